// Package branding holds the product identity shared by every rendered surface.
package branding

// AppName is the public product name.
const AppName = "SabhaEnabler"

// CopyrightYear is the year printed in page footers.
const CopyrightYear = "2025"
