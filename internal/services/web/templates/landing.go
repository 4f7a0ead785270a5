package templates

import (
	"github.com/a-h/templ"
	webi18n "github.com/sabhaenabler/website/internal/services/web/platform/i18n"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Section ids in document order.
const (
	SectionHowItWorks       = "how-it-works"
	SectionCustomerBenefits = "customer-benefits"
	SectionProviderBenefits = "provider-benefits"
	SectionCallToAction     = "get-started"
)

// LandingPage returns the landing page body as a templ component.
func LandingPage(c webi18n.LandingCopy) templ.Component {
	return Component(LandingRoot(c))
}

// LandingRoot builds the landing page tree: hero, four sections, footer.
func LandingRoot(c webi18n.LandingCopy) g.Node {
	return h.Div(h.Class("App"),
		landingHero(c),
		howItWorks(c),
		benefitsSection(SectionCustomerBenefits, c.CustomersHeading, c.CustomerBenefits[:]),
		benefitsSection(SectionProviderBenefits, c.ProvidersHeading, c.ProviderBenefits[:]),
		callToAction(c),
		h.Footer(h.Class("App-footer"),
			h.P(g.Text(c.Copyright)),
		),
	)
}

func landingHero(c webi18n.LandingCopy) g.Node {
	return h.Header(h.Class("App-header"),
		h.H1(g.Text(c.HeroHeading)),
		h.P(g.Text(c.HeroTagline)),
	)
}

func howItWorks(c webi18n.LandingCopy) g.Node {
	return h.Section(h.ID(SectionHowItWorks), h.Class("App-section"),
		h.H2(g.Text(c.HowItWorksHeading)),
		h.Div(h.Class("features-grid"),
			g.Map(c.Features[:], func(feature webi18n.Feature) g.Node {
				return h.Div(h.Class("feature-item"),
					h.H3(g.Text(feature.Heading())),
					h.P(g.Text(feature.Body)),
				)
			}),
		),
	)
}

func benefitsSection(id string, heading string, items []string) g.Node {
	return h.Section(h.ID(id), h.Class("App-section"),
		h.H2(g.Text(heading)),
		h.Ul(
			g.Map(items, func(item string) g.Node {
				return h.Li(g.Text(item))
			}),
		),
	)
}

func callToAction(c webi18n.LandingCopy) g.Node {
	return h.Section(h.ID(SectionCallToAction), h.Class("App-section call-to-action"),
		h.H2(g.Text(c.CTAHeading)),
		h.P(g.Text(c.CTABody)),
		h.Div(h.Class("cta-buttons"),
			Button(ButtonPrimary, c.CTANeedService),
			Button(ButtonSecondary, c.CTAOfferService),
		),
	)
}
