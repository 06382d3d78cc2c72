package feed

import "github.com/interpretive-systems/trendscout/internal/catalog"

// sampleProducts returns the built-in seed set, used when no source is
// configured so the table works end-to-end out of the box.
func sampleProducts() []catalog.Product {
	return []catalog.Product{
		{
			Name: "Car Phone Holder", Category: "Auto",
			Price: 14.99, Commission: 28.0, AgentScore: 12.57,
			Virality: 86.7, Views7d: 1_500_000, Rating: 4.3,
			TikTokURL: "https://www.tiktok.com/", ShopURL: "https://www.tiktok.com/",
		},
		{
			Name: "Baby Head Protector", Category: "Baby",
			Price: 16.99, Commission: 33.0, AgentScore: 13.88,
			Virality: 89.1, Views7d: 1_900_000, Rating: 4.5,
			TikTokURL: "https://www.tiktok.com/", ShopURL: "https://www.tiktok.com/",
		},
		{
			Name: "Portable Smoothie Blender", Category: "Gadgets",
			Price: 34.99, Commission: 20.0, AgentScore: 10.56,
			Virality: 81.2, Views7d: 1_200_000, Rating: 4.7,
			TikTokURL: "https://www.tiktok.com/", ShopURL: "https://www.tiktok.com/",
		},
		{
			Name: "Waterproof Couch Cover", Category: "Home",
			Price: 49.99, Commission: 27.0, AgentScore: 12.84,
			Virality: 90.8, Views7d: 2_100_000, Rating: 5.0,
			TikTokURL: "https://www.tiktok.com/", ShopURL: "https://www.tiktok.com/",
		},
		{
			Name: "LED Galaxy Projector", Category: "Home",
			Price: 39.99, Commission: 25.0, AgentScore: 12.59,
			Virality: 92.3, Views7d: 2_300_000, Rating: 4.9,
			TikTokURL: "https://www.tiktok.com/", ShopURL: "https://www.tiktok.com/",
		},
		{
			Name: "Automatic Soap Dispenser", Category: "Home",
			Price: 29.99, Commission: 18.0, AgentScore: 9.87,
			Virality: 80.2, Views7d: 875_000, Rating: 4.3,
			TikTokURL: "https://www.tiktok.com/", ShopURL: "https://www.tiktok.com/",
		},
		{
			Name: "Sunset Lamp", Category: "Home",
			Price: 24.99, Commission: 22.0, AgentScore: 10.70,
			Virality: 78.9, Views7d: 980_000, Rating: 4.6,
			TikTokURL: "https://www.tiktok.com/", ShopURL: "https://www.tiktok.com/",
		},
		{
			Name: "Pet Hair Remover Roller", Category: "Pets",
			Price: 19.99, Commission: 30.0, AgentScore: 13.18,
			Virality: 88.5, Views7d: 1_750_000, Rating: 4.8,
			TikTokURL: "https://www.tiktok.com/", ShopURL: "https://www.tiktok.com/",
		},
	}
}
