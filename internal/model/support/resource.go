package support

import "strings"

// Category groups resources the way the crisis panel presents them.
type Category string

const (
	CategoryCrisis    Category = "crisis"
	CategorySupport   Category = "support"
	CategoryCommunity Category = "community"
)

// Resource is a helpline or service a user can be pointed to.
type Resource struct {
	Name     string   `json:"name"`
	Contact  string   `json:"contact"`
	Region   string   `json:"region"`
	Category Category `json:"category"`
}

// Seed returns the built-in resource list.
func Seed() []Resource {
	return []Resource{
		{Name: "988 Suicide & Crisis Lifeline", Contact: "Call or text 988", Region: "US", Category: CategoryCrisis},
		{Name: "Crisis Text Line", Contact: "Text HOME to 741741", Region: "US", Category: CategoryCrisis},
		{Name: "Emergency Services", Contact: "Call 911", Region: "US", Category: CategoryCrisis},
		{Name: "NAMI Helpline", Contact: "1-800-950-NAMI (6264)", Region: "US", Category: CategorySupport},
		{Name: "SAMHSA Helpline", Contact: "1-800-662-4357", Region: "US", Category: CategorySupport},
		{Name: "Teen Line", Contact: "Call 310-855-4673 or text TEEN to 839863", Region: "US", Category: CategorySupport},
		{Name: "LGBT National Hotline", Contact: "1-888-843-4564", Region: "US", Category: CategorySupport},
		{Name: "7 Cups", Contact: "Free emotional support chat", Region: "Global", Category: CategoryCommunity},
		{Name: "Crisis Text Line", Contact: "24/7 text support", Region: "Global", Category: CategoryCommunity},
		{Name: "Samaritans", Contact: "116 123", Region: "UK", Category: CategoryCrisis},
		{Name: "Talk Suicide Canada", Contact: "1-833-456-4566", Region: "CA", Category: CategoryCrisis},
		{Name: "Lifeline", Contact: "13 11 14", Region: "AU", Category: CategoryCrisis},
	}
}

// Filter returns resources matching region and category, ignoring case.
// Empty arguments match everything. Global resources match every region.
func Filter(items []Resource, region string, category Category) []Resource {
	out := make([]Resource, 0, len(items))
	for _, item := range items {
		if region != "" && !strings.EqualFold(item.Region, region) && item.Region != "Global" {
			continue
		}
		if category != "" && !strings.EqualFold(string(item.Category), string(category)) {
			continue
		}
		out = append(out, item)
	}
	return out
}
