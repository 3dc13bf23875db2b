package httphandler

import "github.com/motorline/partstore/internal/core/domain"

type (
	Product struct {
		ID             string                 `json:"id"`
		Name           string                 `json:"name"`
		PartNumber     string                 `json:"partNumber"`
		OEMNumber      string                 `json:"oemNumber,omitempty"`
		Category       string                 `json:"category"`
		Brand          string                 `json:"brand"`
		Price          float64                `json:"price"`
		Description    string                 `json:"description"`
		Specifications []Specification        `json:"specifications"`
		Compatibility  []VehicleCompatibility `json:"compatibility"`
		Images         []string               `json:"images"`
		InStock        bool                   `json:"inStock"`
		Featured       bool                   `json:"featured"`
	}

	Specification struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}

	VehicleCompatibility struct {
		Make       string `json:"make"`
		Model      string `json:"model"`
		YearStart  int    `json:"yearStart"`
		YearEnd    int    `json:"yearEnd"`
		EngineType string `json:"engineType,omitempty"`
	}

	Category struct {
		Slug         string `json:"slug"`
		Name         string `json:"name"`
		Description  string `json:"description"`
		Image        string `json:"image"`
		ProductCount int    `json:"productCount"`
	}

	Inquiry struct {
		Kind        string `json:"kind"`
		Name        string `json:"name"`
		Email       string `json:"email"`
		Phone       string `json:"phone"`
		Company     string `json:"company,omitempty"`
		ProductID   string `json:"productId,omitempty"`
		ProductName string `json:"productName,omitempty"`
		Quantity    int    `json:"quantity,omitempty"`
		Subject     string `json:"subject,omitempty"`
		Message     string `json:"message"`
	}

	ProductsResponse struct {
		Products []Product `json:"products"`
		Total    int       `json:"total"`
	}

	SearchResponse struct {
		Active   bool      `json:"active"`
		Products []Product `json:"products"`
		Total    int       `json:"total"`
	}

	InquiryResponse struct {
		InquiryID string `json:"inquiryId"`
	}
)

func toProductDTO(p domain.Product) Product {
	dto := Product{
		ID:          p.ProductID,
		Name:        p.Name,
		PartNumber:  p.PartNumber,
		OEMNumber:   p.OEMNumber,
		Category:    p.Category,
		Brand:       p.Brand,
		Price:       p.Price,
		Description: p.Description,
		Images:      p.Images,
		InStock:     p.InStock,
		Featured:    p.Featured,
	}

	dto.Specifications = make([]Specification, len(p.Specifications))
	for i, s := range p.Specifications {
		dto.Specifications[i] = Specification{Key: s.Name, Value: s.Value}
	}

	dto.Compatibility = make([]VehicleCompatibility, len(p.Compatibility))
	for i, c := range p.Compatibility {
		dto.Compatibility[i] = VehicleCompatibility{
			Make:       c.Make,
			Model:      c.Model,
			YearStart:  c.YearStart,
			YearEnd:    c.YearEnd,
			EngineType: c.EngineType,
		}
	}
	return dto
}

func toProductDTOs(ps []domain.Product) []Product {
	dtos := make([]Product, len(ps))
	for i, p := range ps {
		dtos[i] = toProductDTO(p)
	}
	return dtos
}

func (p Product) toDomain() domain.Product {
	dp := domain.Product{
		ProductID:   p.ID,
		Name:        p.Name,
		PartNumber:  p.PartNumber,
		OEMNumber:   p.OEMNumber,
		Category:    p.Category,
		Brand:       p.Brand,
		Price:       p.Price,
		Description: p.Description,
		Images:      p.Images,
		InStock:     p.InStock,
		Featured:    p.Featured,
	}

	for _, s := range p.Specifications {
		dp.Specifications = append(dp.Specifications,
			domain.Specification{Name: s.Key, Value: s.Value})
	}

	for _, c := range p.Compatibility {
		dp.Compatibility = append(dp.Compatibility,
			domain.VehicleCompatibility{
				Make:       c.Make,
				Model:      c.Model,
				YearStart:  c.YearStart,
				YearEnd:    c.YearEnd,
				EngineType: c.EngineType,
			})
	}
	return dp
}

func toCategoryDTO(c domain.Category) Category {
	return Category{
		Slug:         c.Slug,
		Name:         c.Name,
		Description:  c.Description,
		Image:        c.Image,
		ProductCount: c.ProductCount,
	}
}

func (c Category) toDomain() domain.Category {
	return domain.Category{
		Slug:        c.Slug,
		Name:        c.Name,
		Description: c.Description,
		Image:       c.Image,
	}
}

func (i Inquiry) toDomain() domain.Inquiry {
	return domain.Inquiry{
		Kind:        domain.InquiryKind(i.Kind),
		Name:        i.Name,
		Email:       i.Email,
		Phone:       i.Phone,
		Company:     i.Company,
		ProductID:   i.ProductID,
		ProductName: i.ProductName,
		Quantity:    i.Quantity,
		Subject:     i.Subject,
		Message:     i.Message,
	}
}
