package schema

const ProductSchemaTextV1 = `{
	"type": "record",
	"namespace": "partstore",
	"name": "product",
	"fields": [
		{"name": "product_id", "type": "string"},
		{"name": "name", "type": "string"},
		{"name": "part_number", "type": "string"},
		{"name": "oem_number", "type": "string", "default": ""},
		{"name": "category", "type": "string", "default": ""},
		{"name": "brand", "type": "string"},
		{"name": "price", "type": "double"},
		{"name": "description", "type": "string", "default": ""},
		{"name": "specifications", "type": {
			"type": "array",
			"items": {
				"type": "record",
				"name": "specification",
				"fields": [
					{"name": "key", "type": "string"},
					{"name": "value", "type": "string"}
				]
			}
		}},
		{"name": "compatibility", "type": {
			"type": "array",
			"items": {
				"type": "record",
				"name": "compatibility_entry",
				"fields": [
					{"name": "make", "type": "string"},
					{"name": "model", "type": "string"},
					{"name": "year_start", "type": "int"},
					{"name": "year_end", "type": "int"},
					{"name": "engine_type", "type": "string", "default": ""}
				]
			}
		}},
		{"name": "images", "type": {"type": "array", "items": "string"}},
		{"name": "in_stock", "type": "boolean"},
		{"name": "featured", "type": "boolean"}
	]
}`

type (
	ProductV1 struct {
		ProductID      string            `avro:"product_id"`
		Name           string            `avro:"name"`
		PartNumber     string            `avro:"part_number"`
		OEMNumber      string            `avro:"oem_number"`
		Category       string            `avro:"category"`
		Brand          string            `avro:"brand"`
		Price          float64           `avro:"price"`
		Description    string            `avro:"description"`
		Specifications []SpecificationV1 `avro:"specifications"`
		Compatibility  []CompatibilityV1 `avro:"compatibility"`
		Images         []string          `avro:"images"`
		InStock        bool              `avro:"in_stock"`
		Featured       bool              `avro:"featured"`
	}

	SpecificationV1 struct {
		Key   string `avro:"key"`
		Value string `avro:"value"`
	}

	CompatibilityV1 struct {
		Make       string `avro:"make"`
		Model      string `avro:"model"`
		YearStart  int    `avro:"year_start"`
		YearEnd    int    `avro:"year_end"`
		EngineType string `avro:"engine_type"`
	}
)
