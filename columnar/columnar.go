// Package columnar converts a country collection into Apache Arrow record
// batches for interop with dataframe and analytics tooling. Absent fields
// map to Arrow nulls, so the present/absent distinction of the record
// schema survives the conversion.
package columnar

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/paveg/atlas"
	"github.com/paveg/atlas/internal/errors"
)

// Schema is the Arrow schema of an exported collection. The capital and
// area columns are nullable; absence in the source data becomes null, never
// a sentinel value.
var Schema = arrow.NewSchema([]arrow.Field{
	{Name: "name", Type: arrow.BinaryTypes.String},
	{Name: "code", Type: arrow.BinaryTypes.String},
	{Name: "capital", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "region", Type: arrow.BinaryTypes.String},
	{Name: "population", Type: arrow.PrimitiveTypes.Int64},
	{Name: "area", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
	{Name: "independent", Type: arrow.FixedWidthTypes.Boolean},
	{Name: "timezone_count", Type: arrow.PrimitiveTypes.Int32},
}, nil)

// FromCountries builds an Arrow record batch from the collection. The input
// is never mutated. The caller owns the returned record and must Release it.
func FromCountries(countries []atlas.Country, mem memory.Allocator) (arrow.Record, error) {
	if countries == nil {
		return nil, errors.NewNilCollectionError("FromCountries")
	}
	if mem == nil {
		mem = memory.NewGoAllocator()
	}

	builder := array.NewRecordBuilder(mem, Schema)
	defer builder.Release()

	nameB := builder.Field(0).(*array.StringBuilder)
	codeB := builder.Field(1).(*array.StringBuilder)
	capitalB := builder.Field(2).(*array.StringBuilder)
	regionB := builder.Field(3).(*array.StringBuilder)
	populationB := builder.Field(4).(*array.Int64Builder)
	areaB := builder.Field(5).(*array.Float64Builder)
	independentB := builder.Field(6).(*array.BooleanBuilder)
	timezoneCountB := builder.Field(7).(*array.Int32Builder)

	for _, c := range countries {
		nameB.Append(c.Name)
		codeB.Append(c.Code)
		if c.HasCapital() {
			capitalB.Append(c.Capital)
		} else {
			capitalB.AppendNull()
		}
		regionB.Append(c.Region.String())
		populationB.Append(c.Population)
		if area, ok := c.AreaValue(); ok {
			areaB.Append(area)
		} else {
			areaB.AppendNull()
		}
		independentB.Append(c.Independent)
		timezoneCountB.Append(int32(len(c.Timezones)))
	}

	return builder.NewRecord(), nil
}
