package storage

import (
	"slices"

	"github.com/motorline/partstore/internal/core/domain"
	"github.com/motorline/partstore/internal/core/port"
)

var _ port.FallbackCatalog = (*StaticCatalog)(nil)

// StaticCatalog is the last-resort data set served when the SQL store
// is unreachable. Accessors return copies so callers can filter and
// sort freely.
type StaticCatalog struct {
	products   []domain.Product
	categories []domain.Category
}

func NewStaticCatalog() StaticCatalog {
	return StaticCatalog{
		products:   staticProducts,
		categories: staticCategories,
	}
}

func (c StaticCatalog) Products() []domain.Product {
	return slices.Clone(c.products)
}

func (c StaticCatalog) Categories() []domain.Category {
	return slices.Clone(c.categories)
}

var staticCategories = []domain.Category{
	{
		Slug:         "brakes",
		Name:         "Brake System",
		Description:  "Rotors, pads, calipers and hydraulic components.",
		Image:        "/images/categories/brakes.jpg",
		ProductCount: 3,
	},
	{
		Slug:         "engine",
		Name:         "Engine Components",
		Description:  "Mounts, gaskets, belts and timing parts.",
		Image:        "/images/categories/engine.jpg",
		ProductCount: 2,
	},
	{
		Slug:         "filters",
		Name:         "Filters",
		Description:  "Oil, air, fuel and cabin filters.",
		Image:        "/images/categories/filters.jpg",
		ProductCount: 2,
	},
	{
		Slug:         "suspension",
		Name:         "Suspension & Steering",
		Description:  "Shocks, struts, bushings and control arms.",
		Image:        "/images/categories/suspension.jpg",
		ProductCount: 1,
	},
}

var staticProducts = []domain.Product{
	{
		ProductID:   "st-0001",
		Name:        "Front Brake Rotor",
		PartNumber:  "BR-4410",
		OEMNumber:   "43512-06150",
		Category:    "brakes",
		Brand:       "Brembo",
		Price:       89.99,
		Description: "Vented front brake rotor, balanced and mill-finished.",
		Specifications: []domain.Specification{
			{Name: "Diameter", Value: "296 mm"},
			{Name: "Thickness", Value: "28 mm"},
			{Name: "Material", Value: "Cast iron"},
		},
		Compatibility: []domain.VehicleCompatibility{
			{Make: "Toyota", Model: "Camry", YearStart: 2012, YearEnd: 2017},
			{Make: "Toyota", Model: "Avalon", YearStart: 2013, YearEnd: 2018},
		},
		Images:   []string{"/images/products/br-4410-1.jpg"},
		InStock:  true,
		Featured: true,
	},
	{
		ProductID:   "st-0002",
		Name:        "Ceramic Brake Pads",
		PartNumber:  "CP-2210",
		Category:    "brakes",
		Brand:       "Akebono",
		Price:       54.50,
		Description: "Low-dust ceramic pad set with shims and hardware.",
		Specifications: []domain.Specification{
			{Name: "Position", Value: "Front"},
			{Name: "Compound", Value: "Ceramic"},
		},
		Compatibility: []domain.VehicleCompatibility{
			{Make: "Honda", Model: "Civic", YearStart: 2016, YearEnd: 2021},
			{Make: "Honda", Model: "Accord", YearStart: 2018, YearEnd: 2022},
		},
		Images:  []string{"/images/products/cp-2210-1.jpg"},
		InStock: true,
	},
	{
		ProductID:   "st-0003",
		Name:        "Brake Caliper Assembly",
		PartNumber:  "BC-0988",
		OEMNumber:   "47730-0R041",
		Category:    "brakes",
		Brand:       "Cardone",
		Price:       145.00,
		Description: "Remanufactured caliper with bracket, loaded.",
		Compatibility: []domain.VehicleCompatibility{
			{Make: "Toyota", Model: "RAV4", YearStart: 2013, YearEnd: 2018},
		},
		Images:  []string{"/images/products/bc-0988-1.jpg"},
		InStock: false,
	},
	{
		ProductID:   "st-0004",
		Name:        "Engine Mount Bushing",
		PartNumber:  "EM-3301",
		Category:    "engine",
		Brand:       "Anchor",
		Price:       38.75,
		Description: "Hydraulic engine mount bushing, front position.",
		Specifications: []domain.Specification{
			{Name: "Position", Value: "Front"},
			{Name: "Type", Value: "Hydraulic"},
		},
		Compatibility: []domain.VehicleCompatibility{
			{Make: "Toyota", Model: "Corolla", YearStart: 2014, YearEnd: 2019, EngineType: "1.8L L4"},
			{Make: "Ford", Model: "Focus", YearStart: 2012, YearEnd: 2018, EngineType: "2.0L L4"},
		},
		Images:  []string{"/images/products/em-3301-1.jpg"},
		InStock: true,
	},
	{
		ProductID:   "st-0005",
		Name:        "Serpentine Belt",
		PartNumber:  "SB-6PK1870",
		Category:    "engine",
		Brand:       "Gates",
		Price:       24.99,
		Description: "EPDM serpentine belt, 6 ribs, 1870 mm.",
		Compatibility: []domain.VehicleCompatibility{
			{Make: "Nissan", Model: "Altima", YearStart: 2013, YearEnd: 2018, EngineType: "2.5L L4"},
		},
		Images:   []string{"/images/products/sb-6pk1870-1.jpg"},
		InStock:  true,
		Featured: true,
	},
	{
		ProductID:   "st-0006",
		Name:        "Engine Oil Filter",
		PartNumber:  "OF-7317",
		OEMNumber:   "15400-PLM-A02",
		Category:    "filters",
		Brand:       "Bosch",
		Price:       12.99,
		Description: "Spin-on oil filter with anti-drainback valve.",
		Compatibility: []domain.VehicleCompatibility{
			{Make: "Honda", Model: "Civic", YearStart: 2006, YearEnd: 2021},
			{Make: "Honda", Model: "CR-V", YearStart: 2007, YearEnd: 2022},
		},
		Images:  []string{"/images/products/of-7317-1.jpg"},
		InStock: true,
	},
	{
		ProductID:   "st-0007",
		Name:        "Cabin Air Filter",
		PartNumber:  "CA-10285",
		Category:    "filters",
		Brand:       "Mann-Filter",
		Price:       16.40,
		Description: "Activated-carbon cabin filter.",
		Compatibility: []domain.VehicleCompatibility{
			{Make: "Volkswagen", Model: "Golf", YearStart: 2013, YearEnd: 2020},
		},
		Images:  []string{"/images/products/ca-10285-1.jpg"},
		InStock: true,
	},
	{
		ProductID:   "st-0008",
		Name:        "Front Strut Mount",
		PartNumber:  "SM-9042",
		Category:    "suspension",
		Brand:       "KYB",
		Price:       42.30,
		Description: "Strut mount with bearing, sold individually.",
		Compatibility: []domain.VehicleCompatibility{
			{Make: "Ford", Model: "Fusion", YearStart: 2013, YearEnd: 2020},
		},
		Images:  []string{"/images/products/sm-9042-1.jpg"},
		InStock: false,
	},
}
