package services

import "alphaflow-backend/models"

// RecommendProducts returns products whose RecommendedFor tags share at least
// one trait with the client's visagism profile. An empty profile recommends
// nothing.
func RecommendProducts(products []models.Product, profile models.VisagismProfile) []models.Product {
	traits := profile.Traits()
	if len(traits) == 0 {
		return nil
	}
	traitSet := make(map[string]bool, len(traits))
	for _, t := range traits {
		traitSet[t] = true
	}

	var recs []models.Product
	for _, p := range products {
		for _, tag := range p.RecommendedFor {
			if traitSet[tag] {
				recs = append(recs, p)
				break
			}
		}
	}
	return recs
}
