package i18n

import (
	"fmt"

	"github.com/sabhaenabler/website/internal/platform/branding"
	"github.com/sabhaenabler/website/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
)

// Feature is one numbered step of the how-it-works grid.
type Feature struct {
	Number int
	Title  string
	Body   string
}

// Heading returns the numbered heading, e.g. "1. Customer Needs".
func (f Feature) Heading() string {
	return fmt.Sprintf("%d. %s", f.Number, f.Title)
}

// LandingCopy holds every string rendered on the landing page. The fixed
// array lengths are the section item counts.
type LandingCopy struct {
	Lang              string
	Title             string
	MetaDescription   string
	HeroHeading       string
	HeroTagline       string
	HowItWorksHeading string
	Features          [4]Feature
	CustomersHeading  string
	CustomerBenefits  [4]string
	ProvidersHeading  string
	ProviderBenefits  [5]string
	CTAHeading        string
	CTABody           string
	CTANeedService    string
	CTAOfferService   string
	Copyright         string
}

const (
	keyTitle           = "landing.title"
	keyMetaDescription = "landing.meta_description"
	keyHeroHeading     = "landing.hero.heading"
	keyHeroTagline     = "landing.hero.tagline"
	keyHowHeading      = "landing.how.heading"
	keyCustomersHead   = "landing.customers.heading"
	keyProvidersHead   = "landing.providers.heading"
	keyCTAHeading      = "landing.cta.heading"
	keyCTABody         = "landing.cta.body"
	keyCTANeedService  = "landing.cta.need_service"
	keyCTAOfferService = "landing.cta.offer_service"
	keyCopyright       = "landing.footer.copyright"
)

func featureTitleKey(n int) string    { return fmt.Sprintf("landing.how.%d.title", n) }
func featureBodyKey(n int) string     { return fmt.Sprintf("landing.how.%d.body", n) }
func customerBenefitKey(n int) string { return fmt.Sprintf("landing.customers.%d", n) }
func providerBenefitKey(n int) string { return fmt.Sprintf("landing.providers.%d", n) }

// LandingKeys lists every catalog key the landing page renders.
func LandingKeys() []string {
	var c LandingCopy
	keys := []string{
		keyTitle, keyMetaDescription, keyHeroHeading, keyHeroTagline,
		keyHowHeading, keyCustomersHead, keyProvidersHead,
		keyCTAHeading, keyCTABody, keyCTANeedService, keyCTAOfferService,
		keyCopyright,
	}
	for i := range c.Features {
		keys = append(keys, featureTitleKey(i+1), featureBodyKey(i+1))
	}
	for i := range c.CustomerBenefits {
		keys = append(keys, customerBenefitKey(i+1))
	}
	for i := range c.ProviderBenefits {
		keys = append(keys, providerBenefitKey(i+1))
	}
	return keys
}

// CheckCatalog validates the embedded catalog against the landing keys plus
// any extra keys the caller renders.
func CheckCatalog(extra ...string) error {
	return catalog.Default().Validate(append(LandingKeys(), extra...))
}

// Landing returns localized landing copy for tag.
func Landing(tag language.Tag) LandingCopy {
	loc := Printer(tag)
	c := LandingCopy{
		Lang:              tag.String(),
		Title:             T(loc, keyTitle),
		MetaDescription:   T(loc, keyMetaDescription),
		HeroHeading:       T(loc, keyHeroHeading),
		HeroTagline:       T(loc, keyHeroTagline),
		HowItWorksHeading: T(loc, keyHowHeading),
		CustomersHeading:  T(loc, keyCustomersHead),
		ProvidersHeading:  T(loc, keyProvidersHead),
		CTAHeading:        T(loc, keyCTAHeading),
		CTABody:           T(loc, keyCTABody),
		CTANeedService:    T(loc, keyCTANeedService),
		CTAOfferService:   T(loc, keyCTAOfferService),
		// Year is passed as a string so the printer does not group its digits.
		Copyright: T(loc, keyCopyright, branding.CopyrightYear, branding.AppName),
	}
	for i := range c.Features {
		n := i + 1
		c.Features[i] = Feature{
			Number: n,
			Title:  T(loc, featureTitleKey(n)),
			Body:   T(loc, featureBodyKey(n)),
		}
	}
	for i := range c.CustomerBenefits {
		c.CustomerBenefits[i] = T(loc, customerBenefitKey(i+1))
	}
	for i := range c.ProviderBenefits {
		c.ProviderBenefits[i] = T(loc, providerBenefitKey(i+1))
	}
	return c
}
