package viewmodel

import "github.com/Veraticus/vowsync/internal/model"

// Item table columns.
const (
	ItemName          = "name"
	ItemCategory      = "category"
	ItemSupplier      = "supplier"
	ItemUnitCost      = "unit_cost"
	ItemNotes         = "notes"
	ItemTotalQuantity = "total_quantity"
	ItemTotalCost     = "total_cost"
	ItemEventQuantity = "quantity"
)

// ItemSchema is the schema of the item table.
var ItemSchema = NewSchema(
	[]Column{
		{Key: ItemName, Label: "Item", Type: CellString},
		{Key: ItemCategory, Label: "Category", Type: CellString},
		{Key: ItemSupplier, Label: "Supplier", Type: CellString},
		{Key: ItemUnitCost, Label: "Unit cost", Type: CellNumber},
		{Key: ItemNotes, Label: "Notes", Type: CellString},
		{Key: ItemTotalQuantity, Label: "Qty", Type: CellNumber},
		{Key: ItemTotalCost, Label: "Total", Type: CellNumber},
	},
	[]Column{
		{Key: ItemEventQuantity, Label: "Qty", Type: CellNumber},
	},
)

// ItemSource pivots wedding items with the quantity needed per event.
var ItemSource = Source[model.WeddingItem, model.ItemEvent]{
	Schema:   ItemSchema,
	EntityID: func(i model.WeddingItem) string { return i.ID },
	Name:     func(i model.WeddingItem) string { return i.Name },
	Fields: func(i model.WeddingItem) map[string]Value {
		return map[string]Value{
			ItemName:     StringValue(i.Name),
			ItemCategory: StringValue(i.Category),
			ItemSupplier: StringValue(i.Supplier),
			ItemUnitCost: NumberValue(i.UnitCost),
			ItemNotes:    StringValue(i.Notes),
		}
	},
	RelationEntityID: func(ie model.ItemEvent) string { return ie.ItemID },
	RelationEventID:  func(ie model.ItemEvent) string { return ie.EventID },
	RelationFields: func(ie model.ItemEvent) map[string]Value {
		return map[string]Value{
			ItemEventQuantity: IntValue(ie.QuantityNeeded),
		}
	},
	Derive: func(r *Row) {
		total := 0.0
		for _, fields := range r.Events {
			if v := fields[ItemEventQuantity]; v.Type() == CellNumber {
				total += v.Num()
			}
		}
		r.Fields[ItemTotalQuantity] = NumberValue(total)
		if cost := r.Fields[ItemUnitCost]; cost.Type() == CellNumber {
			r.Fields[ItemTotalCost] = NumberValue(total * cost.Num())
		} else {
			r.Fields[ItemTotalCost] = NullValue()
		}
	},
	FacetColumns: []string{ItemCategory, ItemSupplier},
}
