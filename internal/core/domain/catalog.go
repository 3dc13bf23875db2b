package domain

type (
	Product struct {
		ProductID      string
		Name           string
		PartNumber     string
		OEMNumber      string
		Category       string
		Brand          string
		Price          float64
		Description    string
		Specifications []Specification
		Compatibility  []VehicleCompatibility
		Images         []string
		InStock        bool
		Featured       bool
	}

	// Specification is one spec-name/spec-value pair. Slice order is
	// display order.
	Specification struct {
		Name  string
		Value string
	}

	VehicleCompatibility struct {
		Make       string
		Model      string
		YearStart  int
		YearEnd    int
		EngineType string
	}

	Category struct {
		Slug        string
		Name        string
		Description string
		Image       string
		// ProductCount is denormalized and maintained by the store,
		// never recomputed here.
		ProductCount int
	}
)

// ProductQuery is the coarse, storage-level criteria set. Zero values
// mean "no filter": Featured and InStock constrain only when true.
type ProductQuery struct {
	Category string
	Brand    string
	Featured bool
	InStock  bool
	Search   string
}

func (q ProductQuery) IsZero() bool {
	return q == ProductQuery{}
}

// StoreQuery is a ProductQuery after category slug resolution: the
// category reference is a storage id, not a slug. An empty CategoryID
// means no category filter.
type StoreQuery struct {
	CategoryID string
	Brand      string
	Featured   bool
	InStock    bool
	Search     string
}

// FacetCriteria is the fine, in-memory facet set. Absent facets impose
// no constraint; the price pair applies only when both bounds are set.
type FacetCriteria struct {
	Categories []string
	Brands     []string
	Makes      []string
	MinPrice   *float64
	MaxPrice   *float64
	InStock    bool
}

// SearchResult distinguishes "no query" (Active false) from
// "query with zero matches" (Active true, empty Results).
type SearchResult struct {
	Active  bool
	Results []Product
}

type Inquiry struct {
	InquiryID   string
	Kind        InquiryKind
	Name        string
	Email       string
	Phone       string
	Company     string
	ProductID   string
	ProductName string
	Quantity    int
	Subject     string
	Message     string
}

type InquiryKind string

const (
	InquiryContact InquiryKind = "contact"
	InquiryRFQ     InquiryKind = "rfq"
)
