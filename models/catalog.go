package models

// PrimaryCategories is the closed set of gemstone types a product can be
// classified under.
var PrimaryCategories = []string{
	"pink-sapphire",
	"blue-sapphire",
	"yellow-sapphire",
	"red-coral",
	"pearl",
	"hessonite",
	"ruby",
	"emerald",
	"diamond",
	"opal",
	"amethyst",
	"topaz",
	"garnet",
	"tanzanite",
	"aquamarine",
	"peridot",
	"tourmaline",
	"citrine",
	"moonstone",
	"alexandrite",
	"lapis-lazuli",
	"turquoise",
	"spinel",
	"iolite",
	"zircon",
	"chrysoberyl",
	"kyanite",
	"sodalite",
	"other",
}

var SecondaryCategories = []string{
	"gemstone-rings",
	"gemstone-pendants",
	"loose-gemstones",
	"gemstone-bracelets",
	"none",
}

const categoryImageBase = "https://res.cloudinary.com/gemstone-store/image/upload/categories/"

var categoryImages = func() map[string]string {
	m := make(map[string]string, len(PrimaryCategories))
	for _, c := range PrimaryCategories {
		m[c] = categoryImageBase + c + ".jpg"
	}
	return m
}()

// CategoryImage returns the representative image URL for a primary category.
// Unknown category ids yield an empty string.
func CategoryImage(category string) string {
	return categoryImages[category]
}

func IsPrimaryCategory(category string) bool {
	_, ok := categoryImages[category]
	return ok
}
