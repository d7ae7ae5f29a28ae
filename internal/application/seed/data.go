package seed

// Data describes a starting world. It is decoded from a YAML seed file
// and checked with validator tags before it is applied.
type Data struct {
	Producers []Producer `yaml:"producers" validate:"dive"`
	Factories []Factory  `yaml:"factories" validate:"dive"`
	Markets   []Market   `yaml:"markets" validate:"dive"`
	Customers []Customer `yaml:"customers" validate:"dive"`
}

type Producer struct {
	Name     string  `yaml:"name" validate:"entityname"`
	Material string  `yaml:"material"`
	Cost     float64 `yaml:"cost" validate:"gt=0"`
}

type Factory struct {
	Name      string         `yaml:"name" validate:"entityname"`
	Balance   float64        `yaml:"balance" validate:"gte=0"`
	Designs   []Design       `yaml:"designs" validate:"dive"`
	Materials map[string]int `yaml:"materials" validate:"dive,gt=0"`
	Products  map[string]int `yaml:"products" validate:"dive,gt=0"`
}

type Design struct {
	Product     string       `yaml:"product" validate:"entityname"`
	Cost        float64      `yaml:"cost" validate:"gte=0"`
	Ingredients []Ingredient `yaml:"ingredients" validate:"dive"`
}

type Ingredient struct {
	Material string `yaml:"material" validate:"entityname"`
	PerUnit  int    `yaml:"per_unit" validate:"gt=0"`
}

type Market struct {
	Name    string             `yaml:"name" validate:"entityname"`
	Balance float64            `yaml:"balance" validate:"gte=0"`
	Stock   map[string]int     `yaml:"stock" validate:"dive,gt=0"`
	Prices  map[string]float64 `yaml:"prices" validate:"dive,gt=0"`
}

type Customer struct {
	Name      string         `yaml:"name" validate:"entityname"`
	Balance   float64        `yaml:"balance" validate:"gte=0"`
	Inventory map[string]int `yaml:"inventory" validate:"dive,gt=0"`
}

// Default is the demo world the simulator starts with when no seed file is given
func Default() *Data {
	return &Data{
		Producers: []Producer{
			{Name: "Farm", Material: "Wood", Cost: 10},
			{Name: "Mine", Material: "Gold", Cost: 25},
		},
		Factories: []Factory{
			{
				Name:    "Furniture Factory",
				Balance: 2000,
				Designs: []Design{
					{Product: "Chair", Cost: 50, Ingredients: []Ingredient{{Material: "Wood", PerUnit: 4}}},
				},
			},
			{
				Name:    "Electronics Factory",
				Balance: 3000,
				Designs: []Design{
					{Product: "Phone", Cost: 200, Ingredients: []Ingredient{
						{Material: "Plastic", PerUnit: 2},
						{Material: "Gold", PerUnit: 1},
					}},
				},
			},
		},
		Markets: []Market{
			{Name: "Downtown Mall", Balance: 5000},
			{Name: "Online Store", Balance: 4000},
		},
		Customers: []Customer{
			{Name: "John", Balance: 500},
			{Name: "Alice", Balance: 800},
		},
	}
}
