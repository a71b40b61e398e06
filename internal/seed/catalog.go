package seed

import (
	"time"

	"toolverse/internal/models"
)

func ptr[T any](v T) *T { return &v }

// Tools returns the built-in catalog. Every tool is stamped with createdAt.
func Tools(createdAt time.Time) []*models.Tool {
	tools := []*models.Tool{
		{
			ID:               "1",
			Name:             "ChatGPT",
			Description:      "Advanced conversational AI for writing, coding, and problem-solving. OpenAI's flagship language model that can assist with a wide variety of tasks.",
			ShortDescription: "Advanced conversational AI for writing, coding, and problem-solving.",
			Category:         "Text & Writing",
			Pricing:          models.PricingFreemium,
			Price:            ptr("Free / $20/month for Plus"),
			Website:          "https://chat.openai.com",
			ImageURL:         ptr("https://images.unsplash.com/photo-1677442136019-21780ecad995?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200"),
			Rating:           4.8,
			Featured:         true,
		},
		{
			ID:               "2",
			Name:             "Midjourney",
			Description:      "Create stunning AI-generated artwork and images from text prompts. One of the most advanced AI art generators available.",
			ShortDescription: "Create stunning AI-generated artwork and images from text prompts.",
			Category:         "Image Generation",
			Pricing:          models.PricingPaid,
			Price:            ptr("$10-60/month"),
			Website:          "https://midjourney.com",
			ImageURL:         ptr("https://pixabay.com/get/g665f4631f8ab28d5f7e84f0a9d1f5eb51e655cdb18474ac8619330d48d21fbbd26e2058498f79c58b61b819475f8c2c5f7b488af168e144564e11f3638e660ae_1280.jpg"),
			Rating:           4.6,
			Featured:         true,
		},
		{
			ID:               "3",
			Name:             "GitHub Copilot",
			Description:      "AI-powered code completion and programming assistance. Helps developers write code faster and with fewer errors.",
			ShortDescription: "AI-powered code completion and programming assistance.",
			Category:         "Code Generation",
			Pricing:          models.PricingPaid,
			Price:            ptr("$10/month"),
			Website:          "https://github.com/features/copilot",
			ImageURL:         ptr("https://images.unsplash.com/photo-1555066931-4365d14bab8c?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200"),
			Rating:           4.7,
			Featured:         true,
		},
		{
			ID:               "4",
			Name:             "Jasper AI",
			Description:      "AI writing assistant for marketing copy, blogs, and creative content. Specialized in business and marketing content creation.",
			ShortDescription: "AI writing assistant for marketing copy, blogs, and creative content.",
			Category:         "Text & Writing",
			Pricing:          models.PricingPaid,
			Price:            ptr("$39/month"),
			Website:          "https://jasper.ai",
			ImageURL:         ptr("https://images.unsplash.com/photo-1486312338219-ce68d2c6f44d?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200"),
			Rating:           4.5,
		},
		{
			ID:               "5",
			Name:             "Stable Diffusion",
			Description:      "Open-source AI model for generating images from text descriptions. Free and customizable image generation.",
			ShortDescription: "Open-source AI model for generating images from text descriptions.",
			Category:         "Image Generation",
			Pricing:          models.PricingFree,
			Price:            ptr("Free"),
			Website:          "https://stability.ai",
			ImageURL:         ptr("https://images.unsplash.com/photo-1633356122544-f134324a6cee?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200"),
			Rating:           4.9,
		},
		{
			ID:               "6",
			Name:             "AIVA",
			Description:      "AI composer that creates original music for your projects. Specialized in creating soundtracks and background music.",
			ShortDescription: "AI composer that creates original music for your projects.",
			Category:         "Music & Audio",
			Pricing:          models.PricingFreemium,
			Price:            ptr("Free / $15/month"),
			Website:          "https://aiva.ai",
			ImageURL:         ptr("https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200"),
			Rating:           4.3,
		},
	}
	for _, t := range tools {
		t.CreatedAt = createdAt
	}
	return tools
}

// BlogPosts returns the built-in editorial posts.
func BlogPosts() []*models.BlogPost {
	return []*models.BlogPost{
		{
			ID:         "1",
			Title:      "The Future of AI: 10 Breakthrough Technologies to Watch",
			Content:    "Discover the cutting-edge AI technologies that are reshaping industries...",
			Excerpt:    "Discover the cutting-edge AI technologies that are reshaping industries and transforming how we work, create, and innovate in 2024 and beyond.",
			Author:     "Dr. Emily Zhang",
			AuthorRole: ptr("AI Research Lead"),
			Category:   "Featured",
			ImageURL:   ptr("https://images.unsplash.com/photo-1540575467063-178a50c2df87?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400"),
			ReadTime:   ptr(12),
			Views:      23500,
			Featured:   true,
			CreatedAt:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:         "2",
			Title:      "Getting Started with ChatGPT API",
			Content:    "Learn how to integrate OpenAI's powerful language model into your applications...",
			Excerpt:    "Learn how to integrate OpenAI's powerful language model into your applications.",
			Author:     "Alex Chen",
			AuthorRole: ptr("Developer Advocate"),
			Category:   "Tutorial",
			ImageURL:   ptr("https://images.unsplash.com/photo-1677442136019-21780ecad995?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200"),
			ReadTime:   ptr(5),
			Views:      15200,
			CreatedAt:  time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		},
	}
}

// LockedPassword is stored for accounts that cannot sign in; no bcrypt hash equals it.
const LockedPassword = "!"

// PlaceholderUser is the account behind the fixed identity.
func PlaceholderUser(id string, createdAt time.Time) *models.User {
	return &models.User{
		ID:        id,
		Username:  "demo",
		Email:     "demo@toolverse.local",
		Password:  LockedPassword,
		CreatedAt: createdAt,
	}
}
