// internal/config/presets.go
package config

import "sort"

// RangeSpec describes an integer category.
type RangeSpec struct {
	Min int `mapstructure:"min" yaml:"min"`
	Max int `mapstructure:"max" yaml:"max"`
}

// Preset is a builtin combination of templates and the categories they use.
type Preset struct {
	Name        string
	Description string
	Templates   []string
	// Lists names the embedded word lists the templates draw from.
	Lists    []string
	Ranges   map[string]RangeSpec
	Bindings map[string]string
}

// DefaultPreset is used when no preset is configured.
const DefaultPreset = "advanced"

var presets = map[string]Preset{
	"advanced": {
		Name:        "advanced",
		Description: "third-person farm scenarios with a numeric acreage",
		Templates: []string{
			"A {farm_size} acre {farm_type} farm in {location} growing {crop1} and {crop2} is facing {challenge}. How can they use {technique} and {entity} to {goal} {time_frame}?",
			"In {location}, a farmer wants to transition their {farm_size} acre {crop1} farm from {farm_type} to a more sustainable model. What steps should they take to implement {technique} and {entity} to {goal}?",
			"A community-supported agriculture (CSA) project in {location} is diversifying their {farm_size} acre {farm_type} farm. How can they integrate {crop1}, {crop2}, and {entity} to {goal} while addressing {challenge}?",
			"{farm_type} farmers in {location} are experimenting with {technique} for their {crop1} and {crop2} crops. What role can {entity} play in helping them {goal} and overcome {challenge}?",
			"An agri-tech startup in {location} is developing solutions for {farm_type} {crop1} farms. How can they leverage {entity} and {technique} to help farmers {goal} and address {challenge} {time_frame}?",
			"Climate change is affecting {crop1} yields in {location}. How can {farm_type} farmers adapt using {entity}, {technique}, and possibly introducing {crop2} as a resilient alternative to {goal}?",
			"A {farm_size} acre {farm_type} farm in {location} wants to implement a closed-loop system. How can they integrate {crop1}, {crop2}, and {entity} along with {technique} to {goal} and minimize waste?",
			"Indigenous farmers in {location} are blending traditional {crop1} cultivation with modern {farm_type} practices. How can they use {entity} and {technique} to {goal} while preserving cultural heritage?",
			"A research institute in {location} is studying the effects of {entity} on {crop1} and {crop2} in {farm_type} systems. What experimental design using {technique} could help them {goal} and address {challenge}?",
			"Urban planners in {location} are incorporating {farm_type} agriculture into city development. How can they use {entity} and {technique} in {crop1} and {crop2} production to {goal} and tackle {challenge}?",
			"A {farm_size} acre {farm_type} {crop1} farm in {location} is struggling with {challenge}. What innovative applications of {entity} and {technique} could help them {goal} {time_frame}?",
			"Regenerative {farm_type} farmers in {location} are focusing on soil health. How can they use {entity} and {technique} in their {crop1} and {crop2} rotations to {goal} and address {challenge}?",
			"A cooperative of small-scale {farm_type} farmers in {location} is pooling resources to implement {technique}. How can they incorporate {entity} in their {crop1} and {crop2} production to {goal}?",
			"Agricultural educators in {location} are developing a curriculum on {farm_type} farming. How can they use {entity} and {technique} in practical exercises with {crop1} and {crop2} to teach students to {goal}?",
			"A {farm_type} seed bank in {location} is working to preserve heirloom varieties of {crop1} and {crop2}. How can they use {entity} and {technique} to {goal} and ensure genetic diversity?",
		},
		Lists:  []string{"locations", "farm_types", "crops", "entities", "challenges", "goals", "techniques", "time_frames"},
		Ranges: map[string]RangeSpec{"farm_acres": {Min: 1, Max: 1000}},
		Bindings: map[string]string{
			"location":   "locations",
			"farm_size":  "farm_acres",
			"farm_type":  "farm_types",
			"crop1":      "crops",
			"crop2":      "crops",
			"entity":     "entities",
			"challenge":  "challenges",
			"goal":       "goals",
			"technique":  "techniques",
			"time_frame": "time_frames",
		},
	},
	"first-person": {
		Name:        "first-person",
		Description: "first-person questions from farmers, researchers and planners",
		Templates: []string{
			"I'm a {farm_type} farmer in {location} with a {farm_size} farm. We're growing {crop1} and {crop2}, but we're facing {challenge}. How can I use {technique} and {entity} to {goal} {time_frame}?",
			"My family has been farming {crop1} in {location} for generations, but we're noticing changes due to {challenge}. I'm considering transitioning to {farm_type} farming. What steps should I take to implement {technique} and {entity} to {goal}?",
			"I'm part of a community-supported agriculture (CSA) project in {location}. We have a {farm_size} {farm_type} farm and want to diversify. How can we integrate {crop1}, {crop2}, and {entity} to {goal} while addressing {challenge}?",
			"As a {farm_type} farmer in {location}, I'm experimenting with {technique} for my {crop1} and {crop2} crops. What role can {entity} play in helping me {goal} and overcome {challenge}?",
			"I'm developing agri-tech solutions for {farm_type} {crop1} farms in {location}. How can we leverage {entity} and {technique} to help farmers {goal} and address {challenge} {time_frame}?",
			"Climate change is affecting my {crop1} yields here in {location}. As a {farm_type} farmer, how can I adapt using {entity}, {technique}, and possibly introducing {crop2} as a resilient alternative to {goal}?",
			"I manage a {farm_size} {farm_type} farm in {location} and want to implement a closed-loop system. How can I integrate {crop1}, {crop2}, and {entity} along with {technique} to {goal} and minimize waste?",
			"As an indigenous farmer in {location}, I'm blending our traditional {crop1} cultivation with modern {farm_type} practices. How can I use {entity} and {technique} to {goal} while preserving our cultural heritage?",
			"I'm a researcher studying the effects of {entity} on {crop1} and {crop2} in {farm_type} systems in {location}. What experimental design using {technique} could help us {goal} and address {challenge}?",
			"I'm an urban planner in {location} working on incorporating {farm_type} agriculture into our city development. How can we use {entity} and {technique} in {crop1} and {crop2} production to {goal} and tackle {challenge}?",
			"My {farm_size} {farm_type} {crop1} farm in {location} is struggling with {challenge}. What innovative applications of {entity} and {technique} could help me {goal} {time_frame}?",
			"I'm a regenerative {farm_type} farmer in {location} focusing on soil health. How can I use {entity} and {technique} in my {crop1} and {crop2} rotations to {goal} and address {challenge}?",
			"Our cooperative of small-scale {farm_type} farmers in {location} is pooling resources to implement {technique}. How can we incorporate {entity} in our {crop1} and {crop2} production to {goal}?",
			"I'm developing a curriculum on {farm_type} farming for agricultural students in {location}. How can I use {entity} and {technique} in practical exercises with {crop1} and {crop2} to teach students to {goal}?",
			"I manage a {farm_type} seed bank in {location} working to preserve heirloom varieties of {crop1} and {crop2}. How can we use {entity} and {technique} to {goal} and ensure genetic diversity?",
			"As a {farm_type} farmer in {location} with {soil_type} soil, I'm struggling with {challenge}. How can I use {entity} and {technique} to improve my {crop1} and {crop2} yields?",
			"I'm transitioning my {farm_size} farm in {location} to organic production. What strategies involving {entity} and {technique} can help me manage the transition period and {goal}?",
			"Our {farm_type} cooperative in {climate_zone} {location} is facing {challenge}. How can we implement {technique} and utilize {entity} to {goal} for our {crop1} and {crop2} crops?",
			"I'm a vertical farmer in urban {location} growing {crop1} and {crop2}. How can I incorporate {entity} and {technique} to {goal} and address {challenge} in our limited space?",
			"As a {farm_type} farmer in {location} pursuing {certification} certification, how can I use {entity} and {technique} to {goal} while meeting the stringent requirements?",
			"I'm researching climate-resilient farming practices for {crop1} in {climate_zone} {location}. How can {entity} and {technique} be combined to help farmers {goal} in the face of {challenge}?",
			"Our school in {location} is starting a {farm_type} garden to teach students about sustainable agriculture. How can we use {entity} and {technique} with our {crop1} and {crop2} plants to {goal}?",
			"I'm a {farm_type} beekeeper in {location} looking to expand into crop production. How can I integrate {crop1} and {crop2} with my beekeeping operation using {entity} and {technique} to {goal}?",
			"As a {farm_type} farmer in {location}, I'm interested in integrating livestock with my {crop1} and {crop2} production. How can I use {entity} and {technique} to {goal} in a mixed farming system?",
			"I'm part of a {farm_type} farming collective in {location} focusing on {crop1} and {crop2}. How can we use {entity} and {technique} to {goal} while promoting community engagement?",
		},
		Lists: []string{
			"locations", "farm_types", "farm_sizes", "crops", "entities", "challenges", "goals",
			"techniques", "time_frames", "soil_types", "climate_zones", "certifications",
		},
		Bindings: map[string]string{
			"location":      "locations",
			"farm_size":     "farm_sizes",
			"farm_type":     "farm_types",
			"crop1":         "crops",
			"crop2":         "crops",
			"entity":        "entities",
			"challenge":     "challenges",
			"goal":          "goals",
			"technique":     "techniques",
			"time_frame":    "time_frames",
			"soil_type":     "soil_types",
			"climate_zone":  "climate_zones",
			"certification": "certifications",
		},
	},
	"dynamic": {
		Name:        "dynamic",
		Description: "short base scenario meant to be expanded by a language model",
		Templates: []string{
			"You are a farmer managing a {farm_size} using {method} techniques. It's {season}, and you're focusing on {crop}. You're currently dealing with {activity}, but facing a challenge related to {challenge}. Describe the situation and ask for advice.",
		},
		Lists: []string{"farm_operations", "farming_methods", "seasons", "crop_groups", "farming_activities", "farm_hazards"},
		Bindings: map[string]string{
			"farm_size": "farm_operations",
			"method":    "farming_methods",
			"season":    "seasons",
			"crop":      "crop_groups",
			"activity":  "farming_activities",
			"challenge": "farm_hazards",
		},
	},
}

// LookupPreset returns the named preset.
func LookupPreset(name string) (Preset, bool) {
	p, ok := presets[name]
	return p, ok
}

// PresetNames returns the builtin preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
