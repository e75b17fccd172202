package catalog

import "github.com/dshu-atelier/storefront/internal/models"

var defaultCategories = []models.Category{
	{ID: models.CategoryRings, Name: "Кольца"},
	{ID: models.CategoryEarrings, Name: "Серьги"},
	{ID: models.CategoryNecklaces, Name: "Колье"},
	{ID: models.CategoryOther, Name: "Другое"},
}

var defaultProducts = []models.Product{
	{
		ID:          "1",
		Name:        "Кольцо «Лунный свет»",
		Description: "Серебряное кольцо с лунным камнем ручной огранки",
		Price:       4900,
		Image:       "/images/products/ring-moonlight.jpg",
		Category:    models.CategoryRings,
		Size:        "16,17,18",
		InStock:     5,
		Type:        "кольцо",
	},
	{
		ID:          "2",
		Name:        "Кольцо «Минимал»",
		Description: "Тонкое золотое кольцо без вставок",
		Price:       7200,
		Image:       "/images/products/ring-minimal.jpg",
		Category:    models.CategoryRings,
		Size:        "15,16,17,18,19",
		InStock:     12,
		Type:        "кольцо",
	},
	{
		ID:          "3",
		Name:        "Серьги «Капли»",
		Description: "Серебряные серьги-капли с фианитами",
		Price:       3500,
		Image:       "/images/products/earrings-drops.jpg",
		Category:    models.CategoryEarrings,
		InStock:     8,
		Type:        "серьги",
	},
	{
		ID:          "4",
		Name:        "Серьги «Жемчуг»",
		Description: "Классические пусеты с пресноводным жемчугом",
		Price:       5400,
		Image:       "/images/products/earrings-pearl.jpg",
		Category:    models.CategoryEarrings,
		InStock:     6,
		Type:        "серьги",
	},
	{
		ID:          "5",
		Name:        "Колье «Нить»",
		Description: "Лаконичное колье-цепочка из серебра 925 пробы",
		Price:       6100,
		Image:       "/images/products/necklace-thread.jpg",
		Category:    models.CategoryNecklaces,
		InStock:     4,
		Type:        "колье",
	},
	{
		ID:          "6",
		Name:        "Колье «Созвездие»",
		Description: "Колье с подвесками-звёздами и цирконами",
		Price:       8300,
		Image:       "/images/products/necklace-constellation.jpg",
		Category:    models.CategoryNecklaces,
		InStock:     3,
		Type:        "колье",
	},
	{
		ID:          "7",
		Name:        "Браслет «Волна»",
		Description: "Гибкий серебряный браслет плетения «волна»",
		Price:       4200,
		Image:       "/images/products/bracelet-wave.jpg",
		Category:    models.CategoryOther,
		Size:        "17,19",
		InStock:     7,
		Type:        "браслет",
	},
	{
		ID:          "8",
		Name:        "Брошь «Сад»",
		Description: "Эмалевая брошь с цветочным мотивом",
		Price:       2900,
		Image:       "/images/products/brooch-garden.jpg",
		Category:    models.CategoryOther,
		InStock:     10,
		Type:        "брошь",
	},
}
