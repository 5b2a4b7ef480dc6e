package domain

// ModelDescriptor is an immutable catalog entry for a backend LLM.
type ModelDescriptor struct {
	ID          string
	Name        string
	Description string
}

// DefaultModelID is selected and considered available at session start.
const DefaultModelID = "gpt-3.5-turbo"

var modelCatalog = []ModelDescriptor{
	{
		ID:          "gpt-3.5-turbo",
		Name:        "GPT-3.5 Turbo",
		Description: "Fast and cost-effective model suitable for most tasks",
	},
	{
		ID:          "gpt-4",
		Name:        "GPT-4",
		Description: "More capable model for complex reasoning and understanding",
	},
	{
		ID:          "gpt-4-turbo",
		Name:        "GPT-4 Turbo",
		Description: "Enhanced version of GPT-4 with improved performance",
	},
	{
		ID:          "gpt-4o",
		Name:        "GPT-4o",
		Description: "Newest model with the best performance but may be limited access",
	},
}

// ModelCatalog returns the model catalog in stable display order.
func ModelCatalog() []ModelDescriptor {
	catalog := make([]ModelDescriptor, len(modelCatalog))
	copy(catalog, modelCatalog)
	return catalog
}

// LookupModel finds a catalog entry by id.
func LookupModel(id string) (ModelDescriptor, error) {
	for _, m := range modelCatalog {
		if m.ID == id {
			return m, nil
		}
	}
	return ModelDescriptor{}, NewNotFoundErr("model not found: " + id)
}
