package kafka

import (
	"context"
	"log/slog"

	"github.com/motorline/partstore/internal/core/domain"
	"github.com/motorline/partstore/internal/core/port"
	"github.com/motorline/partstore/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.InquiryProducer = (*InquiryProducer)(nil)
var _ port.ProductUpdateProducer = (*ProductUpdateProducer)(nil)

// A producer is used for composition.
//
// Producing records to the kafka broker and closing the underlying
// [kgo.Client].
type producer struct {
	opPrefix string
	cl       ProducerClient
}

func newProducer(opPrefix string, opts []ProducerOpt) (producer, Encoder, error) {
	const op = "newProducer"

	if len(opts) != 2 {
		panic(opErr(ErrTooFewOpts, opPrefix, op)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return producer{}, nil, opErr(err, opPrefix, op)
		}
	}

	p := producer{opPrefix: opPrefix, cl: options.cl}
	return p, options.encoder, nil
}

func (p producer) close() {
	const op = "close"
	log := slog.With("op", makeOp(p.opPrefix, op))
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p producer) produce(ctx context.Context, rs ...*kgo.Record) error {
	const op = "produce"
	res := p.cl.ProduceSync(ctx, rs...)
	if err := res.FirstErr(); err != nil {
		return opErr(err, p.opPrefix, op)
	}
	return nil
}

// An InquiryProducer publishes accepted [domain.Inquiry] values for
// downstream consumers (mail dispatch, CRM import).
type InquiryProducer struct {
	producer producer
	encoder  Encoder
	opPrefix string
}

func NewInquiryProducer(opts ...ProducerOpt) (InquiryProducer, error) {
	opPrefix := "InquiryProducer"

	p, encoder, err := newProducer(opPrefix, opts)
	if err != nil {
		return InquiryProducer{}, err
	}

	return InquiryProducer{
		producer: p,
		encoder:  encoder,
		opPrefix: opPrefix,
	}, nil
}

func (p InquiryProducer) Close() {
	p.producer.close()
}

func (p InquiryProducer) ProduceInquiry(
	ctx context.Context, inq domain.Inquiry,
) error {
	const op = "ProduceInquiry"

	if err := ctx.Err(); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	s := inquiryToSchemaV1(inq)
	b, err := p.encoder.Encode(s)
	if err != nil {
		return opErr(err, p.opPrefix, op)
	}

	r := &kgo.Record{Key: []byte(s.InquiryID), Value: b}
	if err := p.producer.produce(ctx, r); err != nil {
		return opErr(err, p.opPrefix, op)
	}
	return nil
}

// A ProductUpdateProducer publishes changed [domain.Product] values
// after admin writes.
type ProductUpdateProducer struct {
	producer producer
	encoder  Encoder
	opPrefix string
}

func NewProductUpdateProducer(opts ...ProducerOpt) (ProductUpdateProducer, error) {
	opPrefix := "ProductUpdateProducer"

	p, encoder, err := newProducer(opPrefix, opts)
	if err != nil {
		return ProductUpdateProducer{}, err
	}

	return ProductUpdateProducer{
		producer: p,
		encoder:  encoder,
		opPrefix: opPrefix,
	}, nil
}

func (p ProductUpdateProducer) Close() {
	p.producer.close()
}

func (p ProductUpdateProducer) ProduceProductUpdate(
	ctx context.Context, v domain.Product,
) error {
	const op = "ProduceProductUpdate"

	if err := ctx.Err(); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	s := productToSchemaV1(v)
	b, err := p.encoder.Encode(s)
	if err != nil {
		return opErr(err, p.opPrefix, op)
	}

	r := &kgo.Record{Key: []byte(s.ProductID), Value: b}
	if err := p.producer.produce(ctx, r); err != nil {
		return opErr(err, p.opPrefix, op)
	}
	return nil
}

func inquiryToSchemaV1(v domain.Inquiry) (s schema.InquiryV1) {
	s.InquiryID = v.InquiryID
	s.Kind = string(v.Kind)
	s.Name = v.Name
	s.Email = v.Email
	s.Phone = v.Phone
	s.Company = v.Company
	s.ProductID = v.ProductID
	s.ProductName = v.ProductName
	s.Quantity = v.Quantity
	s.Subject = v.Subject
	s.Message = v.Message
	return
}

func productToSchemaV1(v domain.Product) (s schema.ProductV1) {
	s.ProductID = v.ProductID
	s.Name = v.Name
	s.PartNumber = v.PartNumber
	s.OEMNumber = v.OEMNumber
	s.Category = v.Category
	s.Brand = v.Brand
	s.Price = v.Price
	s.Description = v.Description
	s.Images = v.Images
	s.InStock = v.InStock
	s.Featured = v.Featured

	s.Specifications = make([]schema.SpecificationV1, 0)
	for _, sp := range v.Specifications {
		s.Specifications = append(s.Specifications, schema.SpecificationV1{
			Key:   sp.Name,
			Value: sp.Value,
		})
	}

	s.Compatibility = make([]schema.CompatibilityV1, 0)
	for _, c := range v.Compatibility {
		s.Compatibility = append(s.Compatibility, schema.CompatibilityV1{
			Make:       c.Make,
			Model:      c.Model,
			YearStart:  c.YearStart,
			YearEnd:    c.YearEnd,
			EngineType: c.EngineType,
		})
	}
	return
}
