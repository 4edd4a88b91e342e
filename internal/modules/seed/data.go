package seed

import "github.com/onetree-africa/core/internal/models"

// The initial site content, carried over from the static pages the dynamic
// admin replaced. Seeding is idempotent: rows are matched by natural key
// (project name, news title, gallery src+caption) and never duplicated.

var seedProjects = []models.ProjectModel{
	{
		Name:   "St Joseph Girls Chepterit",
		Trees:  2400,
		Images: models.StringArray{"/chepterit5.jpg", "/chepterit2.jpg", "/chepterit6.jpg"},
	},
	{
		Name:   "World Environmental Day - Landson Foundation",
		Trees:  400,
		Images: models.StringArray{"/earthday/Erday.jpg", "/earthday/Erday1.jpg", "/earthday/erd5.jpg"},
	},
	{
		Name:  "ACK Ziwa High School",
		Trees: 500,
		Images: models.StringArray{
			"/placeholder.svg?height=200&width=400&text=ACK+Ziwa+1",
			"/placeholder.svg?height=200&width=400&text=ACK+Ziwa+2",
			"/placeholder.svg?height=200&width=400&text=ACK+Ziwa+3",
		},
	},
	{
		Name:  "Moi Girls High School",
		Trees: 1200,
		Images: models.StringArray{
			"/placeholder.svg?height=200&width=400&text=Moi+Girls+1",
			"/placeholder.svg?height=200&width=400&text=Moi+Girls+2",
			"/placeholder.svg?height=200&width=400&text=Moi+Girls+3",
		},
	},
	{
		Name:  "Kapkong High School",
		Trees: 1600,
		Images: models.StringArray{
			"/placeholder.svg?height=200&width=400&text=Kapkong+1",
			"/placeholder.svg?height=200&width=400&text=Kapkong+2",
			"/placeholder.svg?height=200&width=400&text=Kapkong+3",
		},
	},
	{
		Name:   "Nelson Mandela Day - Moi University Primary School",
		Trees:  800,
		Images: models.StringArray{"/moiuni/moiuni.jpg", "/moiuni/moiuni1.jpg", "/moiuni/moiuni3.jpg"},
	},
	{
		Name:  "Eldoret National Polytechnic",
		Trees: 1000,
		Images: models.StringArray{
			"/placeholder.svg?height=200&width=400&text=Eldoret+Poly+1",
			"/placeholder.svg?height=200&width=400&text=Eldoret+Poly+2",
			"/placeholder.svg?height=200&width=400&text=Eldoret+Poly+3",
		},
	},
	{
		Name:  "Kapsabet Girls High School",
		Trees: 1800,
		Images: models.StringArray{
			"/placeholder.svg?height=200&width=400&text=Kapsabet+Girls+1",
			"/placeholder.svg?height=200&width=400&text=Kapsabet+Girls+2",
			"/placeholder.svg?height=200&width=400&text=Kapsabet+Girls+3",
		},
	},
	{
		Name:  "Kitale National Polytechnic",
		Trees: 700,
		Images: models.StringArray{
			"/placeholder.svg?height=200&width=400&text=Kitale+Poly+1",
			"/placeholder.svg?height=200&width=400&text=Kitale+Poly+2",
			"/placeholder.svg?height=200&width=400&text=Kitale+Poly+3",
		},
	},
	{
		Name:  "University of Eldoret",
		Trees: 2000,
		Images: models.StringArray{
			"/placeholder.svg?height=200&width=400&text=UoE+1",
			"/placeholder.svg?height=200&width=400&text=UoE+2",
			"/placeholder.svg?height=200&width=400&text=UoE+3",
		},
	},
	{
		Name:  "Moi University Main Campus",
		Trees: 2500,
		Images: models.StringArray{
			"/placeholder.svg?height=200&width=400&text=Moi+Uni+1",
			"/placeholder.svg?height=200&width=400&text=Moi+Uni+2",
			"/placeholder.svg?height=200&width=400&text=Moi+Uni+3",
		},
	},
	{
		Name:  "Kesses Secondary School",
		Trees: 600,
		Images: models.StringArray{
			"/placeholder.svg?height=200&width=400&text=Kesses+1",
			"/placeholder.svg?height=200&width=400&text=Kesses+2",
			"/placeholder.svg?height=200&width=400&text=Kesses+3",
		},
	},
}

var seedNews = []models.NewsModel{
	{
		Title:   "Our founder Jeffrey K Kosgei talks about One Child One Tree Africa",
		Excerpt: "In a recent interview, our founder shares insights on the organization's mission and future plans.",
		Image:   "/placeholder.svg?height=200&width=300&text=Interview",
		Link:    "https://www.youtube.com/live/kVQ1v8kiHzM?si=5uYJ59AWSJxEe5Rd",
		Color:   "bg-pink-500",
	},
	{
		Title:   "Involve local communities in conservation",
		Excerpt: "Learn about our approach to community-driven conservation efforts across Kenya.",
		Image:   "/placeholder.svg?height=200&width=300&text=Community",
		Link:    "https://nation.africa/kenya/blogs-opinion/blogs/make-conservation-local-4412142",
		Color:   "bg-cyan-500",
	},
	{
		Title:   "Learn from Costa Rica's success story",
		Excerpt: "Discover how we're applying lessons from Costa Rica's environmental policies to our initiatives.",
		Image:   "/placeholder.svg?height=200&width=300&text=Costa+Rica",
		Link:    "https://nation.africa/kenya/blogs-opinion/blogs/learn-from-costa-rica-s-success-story-4263508",
		Color:   "bg-amber-500",
	},
}

var seedGallery = []models.GalleryModel{
	{
		Src:     "/placeholder.svg?height=600&width=800&text=Students+Planting+1",
		Alt:     "Students planting trees at local school",
		Caption: "Students from St. Joseph Girls planting trees during our annual event",
	},
	{
		Src:     "/placeholder.svg?height=600&width=800&text=Community+Project+1",
		Alt:     "Community members participating in tree planting",
		Caption: "Local community members joining our reforestation efforts",
	},
	{
		Src:     "/placeholder.svg?height=600&width=800&text=Environmental+Education+1",
		Alt:     "Environmental education session",
		Caption: "Our team conducting an environmental education session at Moi Girls High School",
	},
	{
		Src:     "/placeholder.svg?height=600&width=800&text=Tree+Nursery+1",
		Alt:     "Tree nursery managed by women",
		Caption: "Women tending to our tree nursery, growing seedlings for future planting events",
	},
	{
		Src:     "/placeholder.svg?height=600&width=800&text=Students+Planting+2",
		Alt:     "Students planting trees in rural area",
		Caption: "Students from Kapkong High School participating in rural reforestation",
	},
	{
		Src:     "/placeholder.svg?height=600&width=800&text=Eco+Club+Meeting",
		Alt:     "Eco-club meeting at school",
		Caption: "An eco-club meeting at ACK Ziwa High School, discussing upcoming projects",
	},
	{
		Src:     "/placeholder.svg?height=600&width=800&text=Tree+Planting+Event+1",
		Alt:     "Large tree planting event",
		Caption: "Our annual tree planting event with over 500 participants from local schools",
	},
	{
		Src:     "/placeholder.svg?height=600&width=800&text=Environmental+Workshop",
		Alt:     "Environmental workshop",
		Caption: "Environmental education workshop for teachers and community leaders",
	},
	{
		Src:     "/placeholder.svg?height=600&width=800&text=Seedling+Distribution",
		Alt:     "Seedling distribution",
		Caption: "Distribution of tree seedlings to local schools for their planting programs",
	},
	{
		Src:     "/placeholder.svg?height=600&width=800&text=Community+Engagement",
		Alt:     "Community engagement session",
		Caption: "Community engagement session on the importance of forest conservation",
	},
	{
		Src:     "/placeholder.svg?height=600&width=800&text=School+Visit",
		Alt:     "School visit",
		Caption: "Our team visiting Eldoret National Polytechnic to discuss future collaborations",
	},
	{
		Src:     "/placeholder.svg?height=600&width=800&text=Award+Ceremony",
		Alt:     "Award ceremony",
		Caption: "Recognition ceremony for schools that have planted the most trees this year",
	},
}
