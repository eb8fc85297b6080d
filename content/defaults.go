package content

// Fixed ids for the singleton records.
const (
	ContactDetailsID = "contact-details"
	AboutContentID   = "about-content"
	AdminProfileID   = "admin-profile"
)

// Defaults returns the built-in seed aggregate. It is complete and
// internally consistent: normalization can always fall back to it without
// inventing placeholder entities. Callers get a fresh copy on every call,
// so mutating the result never leaks into later normalizations.
func Defaults() SiteContentData {
	return SiteContentData{
		Projects:       defaultProjects(),
		Services:       defaultServices(),
		Testimonials:   defaultTestimonials(),
		SocialLinks:    defaultSocialLinks(),
		TeamMembers:    defaultTeamMembers(),
		VlogEntries:    defaultVlogEntries(),
		ContactDetails: defaultContactDetails(),
		AboutContent:   defaultAboutContent(),
		AdminProfile:   defaultAdminProfile(),
	}
}

func defaultProjects() []Project {
	return []Project{
		{
			ID:       "1",
			Title:    "The Obsidian Villa",
			Category: CategoryResidential,
			Location: "Beverly Hills, CA",
			ImageURL: "https://images.unsplash.com/photo-1600585154340-be6161a56a0c?auto=format&fit=crop&q=80&w=2070",
			Year:     2023,
			Tags:     []string{"Luxury", "Minimalist", "Smart Home"},
			Description: "A masterclass in modern minimalism, The Obsidian Villa integrates raw concrete textures with expansive glass facades. " +
				"This residential project prioritizes seamless indoor-outdoor living, featuring a cantilevered terrace and a gravity-defying infinity pool.",
			Features: []string{"Solar Integration", "Smart Home Automation", "Custom Millwork", "Sustainable Water Recycling"},
			Gallery: []string{
				"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1600607687920-4e2a09cf159d?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1600607687644-c7171b42498f?auto=format&fit=crop&q=80&w=800",
			},
		},
		{
			ID:       "2",
			Title:    "Nexus Hub",
			Category: CategoryCommercial,
			Location: "Austin, TX",
			ImageURL: "https://images.unsplash.com/photo-1497366216548-37526070297c?auto=format&fit=crop&q=80&w=2070",
			Year:     2024,
			Tags:     []string{"Biophilic", "Sustainable", "Tech"},
			Description: "Nexus Hub redefines the collaborative workspace. Located in the heart of Austin's tech corridor, this 50,000 sq. ft. " +
				"commercial building features biophilic design elements, including an interior three-story vertical garden and high-efficiency climate control systems.",
			Features: []string{"LEED Platinum Certified", "Open-Concept Layouts", "Biophilic Design", "Advanced VRV Cooling"},
			Gallery: []string{
				"https://images.unsplash.com/photo-1497366811353-6870744d04b2?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1497366754035-f200968a6e72?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1431540015161-0bf868a2d407?auto=format&fit=crop&q=80&w=800",
			},
		},
		{
			ID:       "3",
			Title:    "Green Canopy Estate",
			Category: CategoryResidential,
			Location: "Seattle, WA",
			ImageURL: "https://images.unsplash.com/photo-1512917774080-9991f1c4c750?auto=format&fit=crop&q=80&w=2070",
			Year:     2022,
			Tags:     []string{"Sustainable", "Timber", "Modern"},
			Description: "Nestled in the lush hills of Seattle, Green Canopy Estate is a timber-frame marvel. Constructed using reclaimed Pacific " +
				"Northwest cedar, the estate balances luxury with deep environmental responsibility.",
			Features: []string{"Zero-Carbon Footprint", "Rainwater Harvesting", "Triple-Pane Glazing", "Native Landscaping"},
			Gallery: []string{
				"https://images.unsplash.com/photo-1513584684374-8bdb7483fe8f?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1518780664697-55e3ad937233?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1502005229762-cf1b2da7c5d6?auto=format&fit=crop&q=80&w=800",
			},
		},
		{
			ID:       "4",
			Title:    "Industrial Loft X",
			Category: CategoryIndustrial,
			Location: "Brooklyn, NY",
			ImageURL: "https://images.unsplash.com/photo-1515263487990-61b07816b324?auto=format&fit=crop&q=80&w=2070",
			Year:     2023,
			Tags:     []string{"Industrial", "Adaptive Reuse", "Modern"},
			Description: "A transformation of a 1920s warehouse into a cutting-edge creative studio. Industrial Loft X retains its grit with exposed " +
				"brick and steel beams, while introducing modern acoustic treatments and high-speed data infrastructure.",
			Features: []string{"Historic Retrofitting", "Acoustic Engineering", "Custom Industrial Finishes", "Mezzanine Studio"},
			Gallery: []string{
				"https://images.unsplash.com/photo-1515263487990-61b07816b324?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1524758631624-e2822e304c36?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1536376074432-8864a665977a?auto=format&fit=crop&q=80&w=800",
			},
		},
	}
}

func defaultServices() []Service {
	return []Service{
		{
			ID:          "arch-design",
			Title:       "Architectural Design",
			Description: "Bespoke architectural solutions that blend aesthetics with structural integrity.",
			Icon:        "📐",
			ImageURL:    "https://picsum.photos/seed/arch/800/600",
		},
		{
			ID:          "new-const",
			Title:       "New Construction",
			Description: "Turnkey construction projects from ground-breaking to final handover.",
			Icon:        "🏗️",
			ImageURL:    "https://picsum.photos/seed/const/800/600",
		},
		{
			ID:          "interior",
			Title:       "Interior Curation",
			Description: "Modern, sustainable, and functional interior designs for living and working.",
			Icon:        "🛋️",
			ImageURL:    "https://picsum.photos/seed/interior/800/600",
		},
		{
			ID:          "reno",
			Title:       "Renovation & Retrofit",
			Description: "Breathing new life into existing structures with modern upgrades.",
			Icon:        "🔨",
			ImageURL:    "https://picsum.photos/seed/reno/800/600",
		},
	}
}

func defaultTestimonials() []Testimonial {
	return []Testimonial{
		{
			ID:          "t1",
			Name:        "Julian Montgomery",
			ProjectType: "Luxury Residential",
			Feedback: "MILEDESIGNS' attention to detail during the architectural phase was unparalleled. They didn't just build a house; " +
				"they built our dream home with precision and care.",
			Rating:    5,
			AvatarURL: "https://i.pravatar.cc/150?u=julian",
		},
		{
			ID:          "t2",
			Name:        "Sarah Kensington",
			ProjectType: "Commercial Office Hub",
			Feedback: "Professionalism and efficiency. The Nexus Hub project was delivered ahead of schedule without compromising on the " +
				"high-end finishes we requested. Exceptional team.",
			Rating:    5,
			AvatarURL: "https://i.pravatar.cc/150?u=sarah",
		},
		{
			ID:          "t3",
			Name:        "Dr. Elena Rossi",
			ProjectType: "Sustainable Estate",
			Feedback: "The sustainable materials they suggested not only look stunning but have significantly reduced our energy footprint. " +
				"Truly forward-thinking builders in every sense.",
			Rating:    5,
			AvatarURL: "https://i.pravatar.cc/150?u=elena",
		},
	}
}

func defaultSocialLinks() []SocialLink {
	return []SocialLink{
		{ID: "sl-instagram", Name: "Instagram", Platform: PlatformInstagram, URL: "https://instagram.com/miledesigns", Enabled: true},
		{ID: "sl-linkedin", Name: "LinkedIn", Platform: PlatformLinkedIn, URL: "https://linkedin.com/company/miledesigns", Enabled: true},
		{ID: "sl-facebook", Name: "Facebook", Platform: PlatformFacebook, URL: "https://facebook.com/miledesigns", Enabled: false},
		{ID: "sl-youtube", Name: "YouTube", Platform: PlatformYouTube, URL: "https://youtube.com/@miledesigns", Enabled: true},
		{ID: "sl-website", Name: "Website", Platform: PlatformWebsite, URL: "https://miledesigns.com", Enabled: true},
	}
}

func defaultTeamMembers() []TeamMember {
	return []TeamMember{
		{
			ID:       "tm-1",
			Name:     "Amara Okafor",
			Role:     "Principal Architect",
			Bio:      "Leads the design studio with fifteen years of experience across residential and civic projects.",
			ImageURL: "https://i.pravatar.cc/300?u=amara",
		},
		{
			ID:       "tm-2",
			Name:     "Daniel Reyes",
			Role:     "Head of Construction",
			Bio:      "Oversees site operations and delivery, from ground-breaking through final handover.",
			ImageURL: "https://i.pravatar.cc/300?u=daniel",
		},
		{
			ID:       "tm-3",
			Name:     "Priya Nair",
			Role:     "Interior Design Lead",
			Bio:      "Curates interiors that balance material honesty with day-to-day comfort.",
			ImageURL: "https://i.pravatar.cc/300?u=priya",
		},
	}
}

func defaultVlogEntries() []VlogEntry {
	return []VlogEntry{
		{
			ID:           "v1",
			Title:        "Inside The Obsidian Villa",
			Topic:        "Project Walkthrough",
			Duration:     "12 min",
			ThumbnailURL: "https://images.unsplash.com/photo-1600585154340-be6161a56a0c?auto=format&fit=crop&q=80&w=800",
			URL:          "https://youtube.com/watch?v=obsidian-villa",
		},
		{
			ID:           "v2",
			Title:        "Choosing Sustainable Materials",
			Topic:        "Design Advice",
			Duration:     "8 min",
			ThumbnailURL: "https://images.unsplash.com/photo-1513584684374-8bdb7483fe8f?auto=format&fit=crop&q=80&w=800",
			URL:          "https://youtube.com/watch?v=sustainable-materials",
		},
		{
			ID:           "v3",
			Title:        "From Warehouse to Studio",
			Topic:        "Adaptive Reuse",
			Duration:     "15 min",
			ThumbnailURL: "https://images.unsplash.com/photo-1515263487990-61b07816b324?auto=format&fit=crop&q=80&w=800",
			URL:          "https://youtube.com/watch?v=warehouse-studio",
		},
	}
}

func defaultContactDetails() ContactDetails {
	return ContactDetails{
		ID:                      ContactDetailsID,
		Location:                "1200 Design District Ave, Los Angeles, CA",
		PhoneNumbers:            []string{"+1 (310) 555-0147", "+1 (310) 555-0192"},
		InquiryEmail:            "hello@miledesigns.com",
		InquiryWhatsAppNumber:   "+13105550147",
		ShowFloatingWhatsApp:    true,
		FloatingWhatsAppMessage: "Hi MILEDESIGNS, I'd like to discuss a project.",
	}
}

func defaultAboutContent() AboutContent {
	return AboutContent{
		ID:               AboutContentID,
		Badge:            "Since 2009",
		HeadingPrefix:    "We build",
		HeadingHighlight: "spaces",
		HeadingSuffix:    "worth living in.",
		IntroText:        "MILEDESIGNS is a full-service design and construction firm pairing architectural rigor with hands-on craftsmanship.",
		BodyText: "From first sketch to final handover, one team carries the project. We design, engineer, and build under a single roof, " +
			"which keeps budgets honest and timelines short.",
		Stats: []AboutStat{
			{Value: "150", Suffix: "+", Label: "Projects Delivered", Description: "Across residential, commercial, and industrial builds."},
			{Value: "15", Suffix: "yrs", Label: "In Business", Description: "Designing and building since 2009."},
			{Value: "98", Suffix: "%", Label: "Client Retention", Description: "Most of our work comes from referrals and repeat clients."},
		},
		HomeBackgroundImages: []string{
			"https://images.unsplash.com/photo-1600585154340-be6161a56a0c?auto=format&fit=crop&q=80&w=2070",
			"https://images.unsplash.com/photo-1497366216548-37526070297c?auto=format&fit=crop&q=80&w=2070",
		},
		CertificateImages: []string{
			"https://picsum.photos/seed/cert-leed/600/400",
			"https://picsum.photos/seed/cert-iso/600/400",
		},
		ImageURL:      "https://images.unsplash.com/photo-1512917774080-9991f1c4c750?auto=format&fit=crop&q=80&w=2070",
		VisionText:    "Every structure should outlast its mortgage and outshine its render.",
		CTAText:       "Have a site, a sketch, or just an idea? Let's talk it through.",
		CTAButtonText: "Start Your Project",
	}
}

func defaultAdminProfile() AdminProfile {
	return AdminProfile{
		ID:        AdminProfileID,
		Name:      "Site Administrator",
		Email:     "admin@miledesigns.com",
		AvatarURL: "https://i.pravatar.cc/150?u=miledesigns-admin",
		SubAdmins: []SubAdmin{},
	}
}
