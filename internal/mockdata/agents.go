package mockdata

// Agent is one entry of the simulated AI agents catalog.
type Agent struct {
	ID                 int      `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Category           string   `json:"category"`
	UseCases           []string `json:"use_cases"`
	Capabilities       []string `json:"capabilities"`
	PopularityScore    int      `json:"popularity_score"`
	ReleaseDate        string   `json:"release_date"`
	Pricing            string   `json:"pricing"`
	APIAccess          bool     `json:"api_access"`
	MonthlyActiveUsers int      `json:"monthly_active_users"`
	AvgRating          float64  `json:"avg_rating"`
}

// Agents returns the static catalog of well-known AI agents. There is no
// public API for this data, so the catalog is curated by hand.
func Agents() []Agent {
	return []Agent{
		{
			ID:          1,
			Name:        "Claude AI",
			Description: "An AI assistant built to be helpful, harmless, and honest.",
			Category:    "Large Language Model",
			UseCases:    []string{"Content writing", "Research assistance", "Programming help", "Education"},
			Capabilities: []string{
				"Text generation", "Logic reasoning", "Code understanding", "Safety aligned",
			},
			PopularityScore:    95,
			ReleaseDate:        "2022-12-15",
			Pricing:            "Freemium",
			APIAccess:          true,
			MonthlyActiveUsers: 12_500_000,
			AvgRating:          4.8,
		},
		{
			ID:          2,
			Name:        "ChatGPT",
			Description: "A conversational AI model that engages in natural dialogue and assists with a variety of tasks.",
			Category:    "Large Language Model",
			UseCases:    []string{"Conversation", "Drafting", "Brainstorming", "Translation"},
			Capabilities: []string{
				"Text generation", "Dialogue", "Summarization", "Plugin ecosystem",
			},
			PopularityScore:    98,
			ReleaseDate:        "2022-11-30",
			Pricing:            "Freemium",
			APIAccess:          true,
			MonthlyActiveUsers: 180_000_000,
			AvgRating:          4.7,
		},
		{
			ID:          3,
			Name:        "Midjourney",
			Description: "A generative model producing images from natural-language prompts.",
			Category:    "Image Generation",
			UseCases:    []string{"Concept art", "Marketing visuals", "Illustration"},
			Capabilities: []string{
				"Text-to-image", "Style control", "Upscaling",
			},
			PopularityScore:    90,
			ReleaseDate:        "2022-07-12",
			Pricing:            "Subscription",
			APIAccess:          false,
			MonthlyActiveUsers: 16_000_000,
			AvgRating:          4.6,
		},
		{
			ID:          4,
			Name:        "GitHub Copilot",
			Description: "An AI pair programmer suggesting code completions inside the editor.",
			Category:    "Code Assistant",
			UseCases:    []string{"Code completion", "Boilerplate generation", "Test writing"},
			Capabilities: []string{
				"Multi-language completion", "Context awareness", "Chat",
			},
			PopularityScore:    88,
			ReleaseDate:        "2021-10-29",
			Pricing:            "Subscription",
			APIAccess:          true,
			MonthlyActiveUsers: 1_800_000,
			AvgRating:          4.5,
		},
		{
			ID:          5,
			Name:        "Gemini",
			Description: "A multimodal model family handling text, code, images, and audio.",
			Category:    "Large Language Model",
			UseCases:    []string{"Research", "Multimodal analysis", "Coding"},
			Capabilities: []string{
				"Multimodal input", "Long context", "Tool use",
			},
			PopularityScore:    85,
			ReleaseDate:        "2023-12-06",
			Pricing:            "Freemium",
			APIAccess:          true,
			MonthlyActiveUsers: 42_000_000,
			AvgRating:          4.4,
		},
		{
			ID:          6,
			Name:        "Perplexity AI",
			Description: "An answer engine combining live web search with language models.",
			Category:    "Search Assistant",
			UseCases:    []string{"Research", "Fact finding", "Source discovery"},
			Capabilities: []string{
				"Cited answers", "Live search", "Follow-up questions",
			},
			PopularityScore:    80,
			ReleaseDate:        "2022-08-01",
			Pricing:            "Freemium",
			APIAccess:          true,
			MonthlyActiveUsers: 10_000_000,
			AvgRating:          4.3,
		},
	}
}
