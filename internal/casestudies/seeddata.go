package casestudies

// LegacyDataset is the fixed portfolio carried over from the previous site.
var LegacyDataset = []LegacyCaseStudy{
	{
		Title:       "Ledgerly Payments Platform",
		Description: "Card issuing and reconciliation platform for a regional payments startup.",
		Domain:      "fintech",
		Role:        "Full product team",
		Challenge:   "Settlement files from three acquiring banks arrived in incompatible formats and reconciliation was a two-day manual process.",
		Solutions: []SolutionItem{
			{Title: "Unified ingestion", Description: "Normalized all acquirer feeds into a single ledger format."},
			{Title: "Automated matching", Description: "Rule-based matching engine with a manual review queue for exceptions."},
		},
		Technologies: []TechnologyItem{
			{Category: "Backend", Value: "Go"},
			{Category: "Database", Value: "PostgreSQL"},
		},
		Outcomes: []string{
			"Reconciliation time cut from two days to twenty minutes",
			"Exception rate below 0.4% after three months",
		},
	},
	{
		Title:       "MedTrack Patient Portal",
		Description: "Appointment and lab-result portal for a network of private clinics.",
		Domain:      "healthcare",
		Role:        "Backend and integrations",
		Challenge:   "Clinics ran separate scheduling systems and patients had no single view of upcoming visits or results.",
		Solutions: []SolutionItem{
			{Title: "Scheduling gateway", Description: "One API in front of the three clinic systems."},
			{Title: "Result notifications", Description: "Push and email alerts when lab results are released."},
		},
		Technologies: []TechnologyItem{
			{Category: "Backend", Value: "Node.js"},
			{Category: "Mobile", Value: "React Native"},
		},
		Outcomes: []string{
			"No-show rate down 18%",
			"Support calls about results down by half",
		},
	},
	{
		Title:       "Cartwheel Storefront Replatform",
		Description: "Headless storefront rebuild for a home-goods retailer.",
		Domain:      "ecommerce",
		Role:        "Frontend and platform",
		Challenge:   "The legacy monolith could not survive seasonal traffic peaks and every content change needed a deploy.",
		Solutions: []SolutionItem{
			{Title: "Headless storefront", Description: "Static-first storefront with edge-cached product pages."},
			{Title: "Content workflow", Description: "Merchandising team edits content without engineering involvement."},
		},
		Technologies: []TechnologyItem{
			{Category: "Frontend", Value: "Next.js"},
			{Category: "Commerce", Value: "Shopify"},
		},
		Outcomes: []string{
			"Page load under one second at p95",
			"Zero downtime through two holiday seasons",
		},
	},
	{
		Title:       "RouteIQ Fleet Dashboard",
		Description: "Live dispatch and route optimization dashboard for a courier fleet.",
		Domain:      "logistics",
		Challenge:   "Dispatchers assigned routes by hand from spreadsheets and had no live view of driver positions.",
		Solutions: []SolutionItem{
			{Title: "Live tracking", Description: "Driver app streaming positions to a dispatch map."},
			{Title: "Route suggestions", Description: "Nightly batch proposing next-day route assignments."},
		},
		Technologies: []TechnologyItem{
			{Category: "Backend", Value: "Go"},
			{Category: "Frontend", Value: "React"},
		},
		Outcomes: []string{
			"Average deliveries per driver up 22%",
		},
	},
	{
		Title:       "Brightpath Learning Suite",
		Description: "Course authoring and progress tracking for a vocational training provider.",
		Domain:      "education",
		Role:        "Full product team",
		Challenge:   "Instructors distributed course material over email and had no way to track learner progress.",
		Solutions: []SolutionItem{
			{Title: "Authoring tools", Description: "Structured course builder with versioned lessons."},
			{Title: "Progress analytics", Description: "Per-cohort dashboards for instructors."},
		},
		Technologies: []TechnologyItem{
			{Category: "Backend", Value: "Python"},
			{Category: "Frontend", Value: "Vue"},
		},
		Outcomes: []string{
			"Course completion rate up 31%",
		},
	},
	{
		Title:       "Orbital Workspace Analytics",
		Description: "Usage analytics add-on for a B2B collaboration product.",
		Domain:      "saas",
		Role:        "Analytics pipeline",
		Challenge:   "Customer admins demanded seat-usage reporting the product could not produce.",
		Solutions: []SolutionItem{
			{Title: "Event pipeline", Description: "Product events aggregated into per-workspace rollups."},
			{Title: "Admin reports", Description: "Exportable usage reports inside the admin console."},
		},
		Technologies: []TechnologyItem{
			{Category: "Pipeline", Value: "Kafka"},
			{Category: "Warehouse", Value: "ClickHouse"},
		},
		Outcomes: []string{
			"Reporting cited in renewal of two largest accounts",
		},
	},
}
