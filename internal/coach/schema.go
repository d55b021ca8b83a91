package coach

import genai "google.golang.org/genai"

// Response schemas declared per structured feature, mirroring what the
// service is asked to conform to. Free-text features carry no schema.

func nutritionSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"calories": {Type: genai.TypeNumber, Description: "Estimated calories in kcal"},
			"protein":  {Type: genai.TypeNumber, Description: "Estimated protein in grams"},
			"carbs":    {Type: genai.TypeNumber, Description: "Estimated carbohydrates in grams"},
			"fat":      {Type: genai.TypeNumber, Description: "Estimated fat in grams"},
		},
		Required: []string{"calories", "protein", "carbs", "fat"},
	}
}

func workoutPlanSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"day":   {Type: genai.TypeString, Description: "Day of the workout (e.g., Day 1)"},
				"focus": {Type: genai.TypeString, Description: "Main focus of the day (e.g., Upper Body)"},
				"exercises": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"name": {Type: genai.TypeString, Description: "Name of the exercise"},
							"sets": {Type: genai.TypeString, Description: "Number of sets"},
							"reps": {Type: genai.TypeString, Description: "Number of repetitions"},
						},
						Required: []string{"name", "sets", "reps"},
					},
				},
			},
			Required: []string{"day", "focus", "exercises"},
		},
	}
}

func recipesSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"recipeName":   {Type: genai.TypeString},
				"ingredients":  {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				"instructions": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			},
			Required: []string{"recipeName", "ingredients", "instructions"},
		},
	}
}

func groceryListSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"groceryList": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		},
		Required: []string{"groceryList"},
	}
}

func prescriptionSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":   {Type: genai.TypeString},
			"dosage": {Type: genai.TypeString},
		},
		Required: []string{"name", "dosage"},
	}
}

func appointmentSlotsSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"doctor":    {Type: genai.TypeString},
				"specialty": {Type: genai.TypeString},
				"date":      {Type: genai.TypeString},
				"time":      {Type: genai.TypeString},
			},
			Required: []string{"doctor", "specialty", "date", "time"},
		},
	}
}
