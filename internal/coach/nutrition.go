package coach

import (
	"context"
	"fmt"
	"strings"

	"vitalog/internal/llm"
	"vitalog/internal/util/jsonutil"
	"vitalog/internal/wellness"
)

// NutritionFacts is the estimated macro breakdown for one meal.
type NutritionFacts struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// AnalyzeMeal asks for a macro estimate of a free-text meal description.
func (s *Service) AnalyzeMeal(ctx context.Context, description string) (NutritionFacts, error) {
	const feature = "analyze_meal"
	resp, err := s.generate(ctx, feature, llm.Request{
		Text:   fmt.Sprintf(`Analyze the nutritional content of this meal: %q. Provide your best estimate for calories, protein, carbohydrates, and fat.`, description),
		Schema: nutritionSchema(),
	})
	if err != nil {
		return NutritionFacts{}, err
	}

	var raw struct {
		Calories *float64 `json:"calories"`
		Protein  *float64 `json:"protein"`
		Carbs    *float64 `json:"carbs"`
		Fat      *float64 `json:"fat"`
	}
	if err := jsonutil.UnmarshalFlex([]byte(resp.Text), &raw); err != nil {
		return NutritionFacts{}, responseErr(feature, err)
	}
	for field, v := range map[string]*float64{
		"calories": raw.Calories,
		"protein":  raw.Protein,
		"carbs":    raw.Carbs,
		"fat":      raw.Fat,
	} {
		if v == nil {
			return NutritionFacts{}, missingField(feature, field)
		}
	}
	return NutritionFacts{
		Calories: *raw.Calories,
		Protein:  *raw.Protein,
		Carbs:    *raw.Carbs,
		Fat:      *raw.Fat,
	}, nil
}

// Recipes generates two simple recipes from an ingredient list.
func (s *Service) Recipes(ctx context.Context, ingredients string) ([]wellness.Recipe, error) {
	const feature = "recipes"
	resp, err := s.generate(ctx, feature, llm.Request{
		Text:   fmt.Sprintf("Generate two healthy and simple recipes using these ingredients: %s.", ingredients),
		Schema: recipesSchema(),
	})
	if err != nil {
		return nil, err
	}

	var recipes []wellness.Recipe
	if err := jsonutil.UnmarshalFlex([]byte(resp.Text), &recipes); err != nil {
		return nil, responseErr(feature, err)
	}
	if len(recipes) == 0 {
		return nil, responseErr(feature, fmt.Errorf("empty recipe list"))
	}
	for _, r := range recipes {
		if strings.TrimSpace(r.Name) == "" {
			return nil, missingField(feature, "recipeName")
		}
	}
	return recipes, nil
}

// GroceryList builds a combined grocery list from logged meals. An empty
// meal list short-circuits without a model call.
func (s *Service) GroceryList(ctx context.Context, meals []wellness.Meal) ([]string, error) {
	const feature = "grocery_list"
	if len(meals) == 0 {
		return nil, nil
	}
	descriptions := make([]string, 0, len(meals))
	for _, m := range meals {
		descriptions = append(descriptions, m.Description)
	}
	resp, err := s.generate(ctx, feature, llm.Request{
		Text:   fmt.Sprintf("Based on the following meals, create a simple grocery list. Combine similar items: %s.", strings.Join(descriptions, ", ")),
		Schema: groceryListSchema(),
	})
	if err != nil {
		return nil, err
	}

	var raw struct {
		GroceryList []string `json:"groceryList"`
	}
	if err := jsonutil.UnmarshalFlex([]byte(resp.Text), &raw); err != nil {
		return nil, responseErr(feature, err)
	}
	if raw.GroceryList == nil {
		return nil, missingField(feature, "groceryList")
	}
	return raw.GroceryList, nil
}
