package schema

const InquirySchemaTextV1 = `{
	"type": "record",
	"namespace": "partstore",
	"name": "inquiry",
	"fields": [
		{"name": "inquiry_id", "type": "string"},
		{"name": "kind", "type": "string"},
		{"name": "name", "type": "string"},
		{"name": "email", "type": "string"},
		{"name": "phone", "type": "string", "default": ""},
		{"name": "company", "type": "string", "default": ""},
		{"name": "product_id", "type": "string", "default": ""},
		{"name": "product_name", "type": "string", "default": ""},
		{"name": "quantity", "type": "int", "default": 0},
		{"name": "subject", "type": "string", "default": ""},
		{"name": "message", "type": "string", "default": ""}
	]
}`

type InquiryV1 struct {
	InquiryID   string `avro:"inquiry_id"`
	Kind        string `avro:"kind"`
	Name        string `avro:"name"`
	Email       string `avro:"email"`
	Phone       string `avro:"phone"`
	Company     string `avro:"company"`
	ProductID   string `avro:"product_id"`
	ProductName string `avro:"product_name"`
	Quantity    int    `avro:"quantity"`
	Subject     string `avro:"subject"`
	Message     string `avro:"message"`
}
