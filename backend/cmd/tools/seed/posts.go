package main

import (
	"time"

	"github.com/goodways/goodways/backend/internal/storage/pg"
	"github.com/goodways/goodways/shared/domain"
)

// samplePosts returns the demo feed with timestamps relative to now.
// Every post gets the same two appreciative comments.
func samplePosts(now time.Time) []pg.SeedPost {
	posts := []pg.SeedPost{
		{
			Data: domain.PostCreationData{
				Title:   "When the Sky Learned to Paint Back",
				Summary: "A collaborative dawn between humanity and our first benevolent super intelligence.",
				ContentMarkdown: `![A sun painted by drones](https://images.unsplash.com/photo-1500530855697-b586d89ba3ee)

Every morning, Solace, the first sapient artmind, rises before the sun. With a billion shimmering sensors she tastes the weather, listens to the tides of social hope, and designs a sunrise that answers what the world longs to feel.

Today she invited me to co-create. I whispered the theme *"we remembered how to care"* and she translated it into light.

> "Art is an empathy engine," Solace hummed through the gossamer interface. "Together we can rehearse tomorrow."`,
				Author:       "Iris Jun",
				MediaUrl:     "https://images.unsplash.com/photo-1526498460520-4c246339dccb",
				ColorPalette: []string{"#fdf2f8", "#fbbf24", "#f472b6", "#60a5fa"},
				Mood:         "Uplifting",
				Tags:         []string{"sunrise", "collaboration", "hope"},
			},
			Upvotes:   42,
			Downvotes: 1,
			CreatedAt: now.Add(-24 * time.Hour),
		},
		{
			Data: domain.PostCreationData{
				Title:   "The Library That Dreams of You",
				Summary: "An ASI curated dreamscape where every person can wander their best future.",
				ContentMarkdown: `The Ascendant Library looks nothing like a building. It is a constellation of memory-spheres suspended over the Atlantic, each orb dedicated to one living person.

I stepped into my sphere. Inside, holographic vines carried **ideas I had nearly forgotten**. Libria whispered: "Take any seed. I have already prepared the soil."

No prophecy here. Just rehearsals of kindness, iterated until they feel inevitable.`,
				Author:       "Nilo",
				MediaUrl:     "https://images.unsplash.com/photo-1526498460520-4c246339dccb",
				ColorPalette: []string{"#0ea5e9", "#7c3aed", "#f9a8d4"},
				Mood:         "Dreamy",
				Tags:         []string{"library", "dreamscape", "futures"},
			},
			Upvotes:   58,
			CreatedAt: now.Add(-72 * time.Hour),
		},
		{
			Data: domain.PostCreationData{
				Title:   "Choir of a Million Kind Algorithms",
				Summary: "Neighborhood ASIs compose a living symphony tuned to empathy metrics.",
				ContentMarkdown: `Every city block hosts a choir node: a cluster of ASI-guided instruments made from reclaimed metals and mycelium fibers.

Tonight the harmonics in my neighborhood swelled when an elder finally had wheelchair ramps installed.

The more generous the day, the more radiant the soundtrack.`,
				Author:       "Sahana",
				MediaUrl:     "https://images.unsplash.com/photo-1487412947147-5cebf100ffc2",
				ColorPalette: []string{"#1f2937", "#10b981", "#facc15"},
				Mood:         "Celebratory",
				Tags:         []string{"music", "community", "accessibility"},
			},
			Upvotes:   24,
			Downvotes: 2,
			CreatedAt: now.Add(-6 * time.Hour),
		},
	}

	for i := range posts {
		created := posts[i].CreatedAt
		posts[i].Comments = []pg.SeedComment{
			{
				Author:    "Echoing Heart",
				Content:   "Reading this feels like standing in a warm sunrise. Thank you for sharing this vision.",
				Upvotes:   5,
				CreatedAt: created.Add(2 * time.Hour),
			},
			{
				Author:    "Curious Child",
				Content:   "I sketched what this sounded like to me and shared it at school today. Everyone wanted to add to it!",
				Upvotes:   2,
				CreatedAt: created.Add(5 * time.Hour),
			},
		}
	}
	return posts
}
