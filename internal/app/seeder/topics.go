package seeder

import (
	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
	"github.com/heartmarshall/yoruba-science-backend/internal/service/topic"
)

// sampleTopics are the featured starter topics of a fresh installation.
func sampleTopics() []topic.CreateInput {
	return []topic.CreateInput{
		{
			Name:        domain.Localized{Yo: "Ìmọ́lẹ̀", En: "Light"},
			Category:    domain.CategoryPhysics,
			Description: domain.Localized{Yo: "Ìtumò àti àwọn ìṣe ìmọ́lẹ̀", En: "Properties and behavior of light"},
			Icon:        "💡",
			Color:       "#3498db",
			IsFeatured:  true,
			Order:       1,
		},
		{
			Name:        domain.Localized{Yo: "Àwọn Ẹ̀dá Ọ̀fun", En: "Human Body"},
			Category:    domain.CategoryBiology,
			Description: domain.Localized{Yo: "Ìṣẹ̀lẹ̀ àti ìṣòro ẹ̀dá ọ̀fun", En: "Human anatomy and physiology"},
			Icon:        "👤",
			Color:       "#e74c3c",
			IsFeatured:  true,
			Order:       2,
		},
		{
			Name:        domain.Localized{Yo: "Ilẹ̀ Ayé", En: "Earth Science"},
			Category:    domain.CategoryEarth,
			Description: domain.Localized{Yo: "Nípa ilẹ̀ ayé àti àwọn òṣùpá", En: "Study of Earth and planets"},
			Icon:        "🌍",
			Color:       "#2ecc71",
			IsFeatured:  true,
			Order:       3,
		},
	}
}
