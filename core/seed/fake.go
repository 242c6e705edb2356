package seed

import (
	"context"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/bxcodec/faker/v4"
	"github.com/google/uuid"

	"github.com/trezcool/unirepo/core/material"
)

// FakeMaterials generates n random catalog entries uploaded by uploadedBy.
func FakeMaterials(n int, uploadedBy string) []material.Material {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	materials := make([]material.Material, 0, n)
	for i := 0; i < n; i++ {
		nKeywords := rnd.Intn(4) + 1
		keywords := make([]string, nKeywords)
		for j := range keywords {
			keywords[j] = strings.ToLower(faker.Word())
		}

		materials = append(materials, material.Material{
			ID:          uuid.NewString(),
			Title:       strings.TrimSuffix(faker.Sentence(), "."),
			Author:      faker.Name(),
			Type:        material.AllTypes[rnd.Intn(len(material.AllTypes))],
			Year:        strconv.Itoa(1990 + rnd.Intn(time.Now().Year()-1989)),
			Description: faker.Paragraph(),
			Keywords:    keywords,
			UploadedBy:  uploadedBy,
			Downloads:   rnd.Intn(500),
			CreatedAt:   time.Now().UTC(),
		})
	}
	return materials
}

// Fake inserts n generated materials and returns how many were stored.
func (s *Seeder) Fake(ctx context.Context, n int, uploadedBy string) (int, error) {
	for i, m := range FakeMaterials(n, uploadedBy) {
		if _, err := s.repos.Materials.CreateMaterial(ctx, m); err != nil {
			return i, err
		}
	}
	return n, nil
}
