package dataset

import "github.com/screenmeta/screenmeta/internal/schema"

// Annotation is a curated ground-truth entry: a real catalog description and
// the metadata a careful human reader would extract from it.
type Annotation struct {
	Title       string
	Description string
	Expected    schema.ContentMetadata
}

// Annotations returns the curated ground-truth list. The entries are static
// and read-only; list order is irrelevant to scoring.
func Annotations() []Annotation {
	return []Annotation{
		{
			Title:       "3%",
			Description: "In a future where the elite inhabit an island paradise far from the crowded slums, you get one chance to join the 3% saved from squalor.",
			Expected: schema.ContentMetadata{
				Genres:          []string{"Sci-Fi", "Drama", "Thriller"},
				Themes:          []string{"inequality", "survival", "ambition"},
				Mood:            "dark",
				TargetAudience:  "adults",
				ContentWarnings: []string{"violence"},
			},
		},
		{
			Title:       "7:19",
			Description: "After a devastating earthquake hits Mexico City, trapped survivors from all walks of life wait to be rescued while trying desperately to stay alive.",
			Expected: schema.ContentMetadata{
				Genres:          []string{"Drama", "Thriller"},
				Themes:          []string{"survival", "community", "disaster"},
				Mood:            "tense",
				TargetAudience:  "adults",
				ContentWarnings: []string{"death", "frightening scenes"},
			},
		},
		{
			Title:       "23:59",
			Description: "When an army recruit is found dead, his fellow soldiers are forced to confront a terrifying secret that's haunting their jungle island training camp.",
			Expected: schema.ContentMetadata{
				Genres:          []string{"Horror", "Mystery", "Thriller"},
				Themes:          []string{"death", "fear", "secrets"},
				Mood:            "eerie",
				TargetAudience:  "adults",
				ContentWarnings: []string{"violence", "death", "frightening scenes"},
			},
		},
		{
			Title:       "9",
			Description: "In a postapocalyptic world, rag-doll robots hide in fear from dangerous machines out to exterminate them, until a brave newcomer joins the group.",
			Expected: schema.ContentMetadata{
				Genres:          []string{"Animation", "Sci-Fi", "Adventure"},
				Themes:          []string{"survival", "courage", "friendship"},
				Mood:            "dark",
				TargetAudience:  "teens",
				ContentWarnings: []string{"violence", "frightening scenes"},
			},
		},
		{
			Title:       "21",
			Description: "A brilliant group of students become card-counting experts with the intent of swindling millions out of Las Vegas casinos by playing blackjack.",
			Expected: schema.ContentMetadata{
				Genres:          []string{"Drama", "Thriller", "Crime"},
				Themes:          []string{"ambition", "deception", "risk"},
				Mood:            "thrilling",
				TargetAudience:  "adults",
				ContentWarnings: []string{"gambling"},
			},
		},
		{
			Title:       "Altered Minds",
			Description: "A genetics professor experiments with a treatment for his comatose sister that blends medical and shamanic cures, but unlocks a shocking side effect.",
			Expected: schema.ContentMetadata{
				Genres:          []string{"Sci-Fi", "Drama", "Thriller"},
				Themes:          []string{"science", "family", "experimentation"},
				Mood:            "suspenseful",
				TargetAudience:  "adults",
				ContentWarnings: []string{"frightening scenes"},
			},
		},
		{
			Title:       "Cadaver",
			Description: "After an awful accident, a couple admitted to a grisly hospital are separated and must find each other to escape — before death finds them.",
			Expected: schema.ContentMetadata{
				Genres:          []string{"Horror", "Thriller"},
				Themes:          []string{"love", "survival", "death"},
				Mood:            "eerie",
				TargetAudience:  "adults",
				ContentWarnings: []string{"violence", "gore", "frightening scenes"},
			},
		},
		{
			Title:       "187",
			Description: "After one of his high school students attacks him, dedicated teacher Trevor Garfield grows weary of the gang warfare in the New York City school system and moves to California to teach there, thinking it must be a less hostile environment.",
			Expected: schema.ContentMetadata{
				Genres:          []string{"Drama", "Crime"},
				Themes:          []string{"education", "violence", "perseverance"},
				Mood:            "dramatic",
				TargetAudience:  "adults",
				ContentWarnings: []string{"violence"},
			},
		},
		{
			Title:       "Clinical",
			Description: "When a doctor goes missing, his psychiatrist wife treats the bizarre medical condition of a psychic patient, who knows much more than he's leading on.",
			Expected: schema.ContentMetadata{
				Genres:          []string{"Mystery", "Thriller"},
				Themes:          []string{"deception", "secrets", "psychology"},
				Mood:            "suspenseful",
				TargetAudience:  "adults",
				ContentWarnings: []string{},
			},
		},
		{
			Title:       "The Haunting",
			Description: "An architect and his wife move into a castle that is slated to become a luxury hotel. But something inside is determined to stop the renovation.",
			Expected: schema.ContentMetadata{
				Genres:          []string{"Horror", "Mystery"},
				Themes:          []string{"fear", "supernatural", "isolation"},
				Mood:            "eerie",
				TargetAudience:  "adults",
				ContentWarnings: []string{"frightening scenes"},
			},
		},
	}
}
