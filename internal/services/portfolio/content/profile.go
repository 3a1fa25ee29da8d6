// Package content provides the portfolio's page content: the project list
// and the profile copy around it.
//
// The built-in content is compiled in. LoadFile reads an alternative project
// list from a YAML document so content can be swapped without a rebuild.
package content

// Stat is one headline number in the hero snapshot.
type Stat struct {
	Value string
	Label string
	Tone  string
}

// Highlight is a short badge shown under the hero call to action.
type Highlight struct {
	Icon  string
	Label string
}

// ContactLink is one way to reach the portfolio owner.
type ContactLink struct {
	Label    string
	Href     string
	Icon     string
	External bool
}

// Profile holds everything on the page except the projects.
type Profile struct {
	Name       string
	Headline   string
	Tagline    string
	Pitch      string
	// ImagePath is optional; the page falls back to initials.
	ImagePath  string
	Highlights []Highlight
	Snapshot   []Stat
	About      []string
	Contacts   []ContactLink
}

// DefaultProfile returns the built-in profile copy.
func DefaultProfile() Profile {
	return Profile{
		Name:     "Prashant Bhende",
		Headline: "Engineering Manager (AI & Automation)",
		Tagline:  "Agentic systems • RAG • Developer Experience",
		Pitch: "I build GenAI platforms that remove friction so developers can focus on what they do best: building great software. " +
			"1200+ person-days saved yearly, 20+ teams onboarded, and measurable gains across code quality and cycle time.",
		Highlights: []Highlight{
			{Icon: "award", Label: "6× Top Contributor"},
			{Icon: "star", Label: "Patent Filed"},
		},
		Snapshot: []Stat{
			{Value: "90%", Label: "Dup-bug detection", Tone: "emerald"},
			{Value: "1200+", Label: "Person-days saved/yr", Tone: "cyan"},
			{Value: "20+", Label: "Teams onboarded", Tone: "fuchsia"},
			{Value: "3×", Label: "Cycle acceleration", Tone: "amber"},
		},
		About: []string{
			"Hi, I'm Prashant Bhende, an Engineering Manager who's passionate about building AI-driven tools that make developers' lives easier. " +
				"Over the past 9+ years at NVIDIA, I've led teams creating automation and Generative AI solutions that save thousands of engineering hours, improve defect detection, and cut down manual grunt work.",
			"I enjoy mentoring engineers, helping them grow into experts, and pushing teams to experiment with new tech like multi-agent systems, RAG pipelines, and AI-powered code review. " +
				"My projects, like BAT.AI, an agentic workflow for automated log analysis and bug filing, are already being used across multiple global teams.",
			"Beyond the tech, I love solving real developer pain points and creating smoother feedback loops so people can focus on building great software. " +
				"I'm currently doing my doctoral research with GGU, exploring how Generative AI adoption can transform automation at scale.",
		},
		Contacts: []ContactLink{
			{Label: "prashant.bhende02@gmail.com", Href: "mailto:prashant.bhende02@gmail.com", Icon: "mail"},
			{Label: "+91-7507829514", Href: "tel:+917507829514", Icon: "phone"},
			{Label: "LinkedIn Profile", Href: "https://linkedin.com/in/prashant-bhende", Icon: "linkedin", External: true},
		},
	}
}
