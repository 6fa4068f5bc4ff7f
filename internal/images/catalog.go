package images

// Category is a canonical product category key.
type Category string

const (
	Vegetables Category = "vegetables"
	Fruits     Category = "fruits"
	Cereals    Category = "cereals"
	Livestock  Category = "livestock"
	Poultry    Category = "poultry"
	Seeds      Category = "seeds"
)

// CanonicalCategories lists every category the catalog guarantees an image
// for, in display order.
var CanonicalCategories = []Category{
	Vegetables, Fruits, Cereals, Livestock, Poultry, Seeds,
}

// staticCatalog is the bundled image set. Always available, never fails;
// it is the floor every fallback chain bottoms out on.
var staticCatalog = map[Category]string{
	Vegetables: "assets/images/categories/vegetables.jpg",
	Fruits:     "assets/images/categories/fruits.jpg",
	Cereals:    "assets/images/categories/cereals.jpg",
	Livestock:  "assets/images/categories/livestock.jpg",
	Poultry:    "assets/images/categories/poultry.jpg",
	Seeds:      "assets/images/categories/seeds.jpg",
}

// StaticCatalog returns a copy of the bundled image set so callers cannot
// mutate the shared map.
func StaticCatalog() map[Category]string {
	out := make(map[Category]string, len(staticCatalog))
	for k, v := range staticCatalog {
		out[k] = v
	}
	return out
}

// GenericPool holds the fallback images used when a label matches no
// category keyword. Selection from it is uniformly random.
var GenericPool = []string{
	"assets/images/categories/produce_1.jpg",
	"assets/images/categories/produce_2.jpg",
	"assets/images/categories/produce_3.jpg",
	"assets/images/categories/produce_4.jpg",
}

// keywordRule maps free-text label fragments to a canonical category.
type keywordRule struct {
	keywords []string
	category Category
}

// keywordRules is checked in order; the first matching rule wins.
var keywordRules = []keywordRule{
	{keywords: []string{"vegetable"}, category: Vegetables},
	{keywords: []string{"fruit"}, category: Fruits},
	{keywords: []string{"cereal", "grain"}, category: Cereals},
	{keywords: []string{"livestock", "meat"}, category: Livestock},
	{keywords: []string{"poultry", "chicken"}, category: Poultry},
	{keywords: []string{"seed"}, category: Seeds},
}
