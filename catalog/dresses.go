// Package catalog 前台展示用的固定目录。
// 管理后台的目录第一次读取时从这里复制一份，之后两者互不影响。
package catalog

import "dressa_storefront/models"

var builtin = []models.Dress{
	{
		ID:          "DR-001",
		Name:        "Velvet Evening Gown",
		Price:       2500,
		Image:       "https://i.pinimg.com/736x/f9/eb/72/f9eb728b5e1cc1457cad6985dbb65faf.jpg",
		Description: "Luxurious burgundy velvet gown perfect for elegant evening events",
	},
	{
		ID:          "DR-002",
		Name:        "Floral Summer Midi",
		Price:       1200,
		Image:       "https://i.pinimg.com/736x/04/38/13/04381399f014ec72d41a7d00034dd358.jpg",
		Description: "Light and breezy floral midi dress ideal for garden parties",
	},
	{
		ID:          "DR-003",
		Name:        "Classic Black Cocktail",
		Price:       1800,
		Image:       "https://i.pinimg.com/736x/fe/b5/04/feb5048558c97f9af38f6326f3219510.jpg",
		Description: "Timeless little black dress with modern silhouette",
	},
	{
		ID:          "DR-004",
		Name:        "Champagne Satin Gown",
		Price:       3000,
		Image:       "https://i.pinimg.com/1200x/ac/c5/31/acc5315604ebfd6fe2676cc3d21c471e.jpg",
		Description: "Stunning satin gown with delicate draping and elegant train",
	},
	{
		ID:          "DR-005",
		Name:        "Rose Gold Sequin Dress",
		Price:       2200,
		Image:       "https://i.pinimg.com/736x/d4/9b/7e/d49b7e3647b56ef41bfd7ab2d5c382e0.jpg",
		Description: "Sparkling sequin dress that catches the light beautifully",
	},
	{
		ID:          "DR-006",
		Name:        "Emerald Wrap Dress",
		Price:       1500,
		Image:       "https://i.pinimg.com/1200x/9c/c5/85/9cc585d346e34cdff230ef472f91117e.jpg",
		Description: "Sophisticated emerald green wrap dress with flattering fit",
	},
}

// Builtin 返回副本，调用方可以随意修改
func Builtin() []models.Dress {
	out := make([]models.Dress, len(builtin))
	copy(out, builtin)
	return out
}

func ByID(id string) (models.Dress, bool) {
	for _, d := range builtin {
		if d.ID == id {
			return d, true
		}
	}
	return models.Dress{}, false
}
