package portfolio

// Sample is the demo portfolio shown by the preview before anything has been
// saved.
func Sample() Record {
	return Record{
		PersonalInfo: PersonalInfo{
			Name:     "John Doe",
			Title:    "Full Stack Developer",
			Bio:      "Passionate developer with 5+ years of experience building web applications.",
			Email:    "john@example.com",
			Phone:    "+1 (555) 123-4567",
			Location: "San Francisco, CA",
		},
		Projects: Projects{
			{
				ID:           "1",
				Title:        "E-commerce Platform",
				Description:  "A full-stack e-commerce solution built with React and Node.js",
				Technologies: []string{"React", "Node.js", "MongoDB", "Stripe"},
				LiveURL:      "https://example.com",
				GithubURL:    "https://github.com/example",
				Featured:     true,
			},
		},
		Experience: Experiences{
			{
				ID:          "1",
				Company:     "Tech Corp",
				Position:    "Senior Developer",
				Duration:    "Jan 2020 - Present",
				Description: "Led development of multiple web applications",
				Current:     true,
			},
		},
		Skills: Skills{"JavaScript", "React", "Node.js", "Python", "AWS"},
		Social: SocialLinks{
			Github:   "https://github.com/johndoe",
			Linkedin: "https://linkedin.com/in/johndoe",
			Twitter:  "https://twitter.com/johndoe",
			Website:  "https://johndoe.com",
		},
		Testimonials: Testimonials{},
		Contact:      ContactInfo{Email: "john@example.com"},
	}
}
