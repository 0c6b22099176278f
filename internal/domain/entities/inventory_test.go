package entities

import "testing"

func TestFlatInventory(t *testing.T) {
	inv := FlatInventory{ItemSofa, ItemBed}

	if inv.Empty() {
		t.Fatalf("expected non-empty inventory")
	}
	lines := inv.LineItems()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Label != "Canapé" || lines[0].Quantity != 1 {
		t.Fatalf("unexpected line: %+v", lines[0])
	}

	if !(FlatInventory{}).Empty() {
		t.Fatalf("expected empty inventory")
	}
}

func TestRoomInventory(t *testing.T) {
	t.Run("quantity clamping", func(t *testing.T) {
		inv := NewRoomInventory()
		inv.SetRoomQuantity(RoomBedroom, 99)
		if inv.Rooms[RoomBedroom].Quantity != MaxRoomQuantity {
			t.Fatalf("expected clamp to %d, got %d", MaxRoomQuantity, inv.Rooms[RoomBedroom].Quantity)
		}

		inv.SetItemQuantity(RoomBedroom, ItemBoxes, 999)
		if inv.Rooms[RoomBedroom].Items[ItemBoxes] != MaxRoomItemQuantity {
			t.Fatalf("expected clamp to %d, got %d", MaxRoomItemQuantity, inv.Rooms[RoomBedroom].Items[ItemBoxes])
		}

		inv.SetItemQuantity(RoomBedroom, ItemBoxes, -4)
		if _, ok := inv.Rooms[RoomBedroom].Items[ItemBoxes]; ok {
			t.Fatalf("expected negative quantity to drop the item")
		}
	})

	t.Run("zero quantity deselects and drops items", func(t *testing.T) {
		inv := NewRoomInventory()
		inv.SetRoomQuantity(RoomKitchen, 1)
		inv.SetItemQuantity(RoomKitchen, ItemFridge, 1)
		inv.SetRoomQuantity(RoomKitchen, 0)

		if !inv.Empty() {
			t.Fatalf("expected empty inventory after deselect")
		}
		if _, ok := inv.Rooms[RoomKitchen]; ok {
			t.Fatalf("expected kitchen removed")
		}
	})

	t.Run("items on unselected rooms are ignored", func(t *testing.T) {
		inv := NewRoomInventory()
		inv.SetItemQuantity(RoomGarage, ItemBoxes, 5)
		if len(inv.Rooms) != 0 {
			t.Fatalf("unexpected room entry: %v", inv.Rooms)
		}
	})

	t.Run("line items are stable and room scoped", func(t *testing.T) {
		inv := NewRoomInventory()
		inv.SetRoomQuantity(RoomLivingRoom, 1)
		inv.SetItemQuantity(RoomLivingRoom, ItemSofa, 2)
		inv.SetRoomQuantity(RoomBedroom, 2)
		inv.SetItemQuantity(RoomBedroom, ItemBed, 2)

		lines := inv.LineItems()
		if len(lines) != 4 {
			t.Fatalf("expected 4 lines, got %+v", lines)
		}
		// Rooms sort by identifier: bedroom before livingRoom.
		if lines[0].Label != "Chambre" || lines[0].Quantity != 2 {
			t.Fatalf("unexpected first line: %+v", lines[0])
		}
		if lines[1].Label != "Lit (Chambre)" || lines[1].Quantity != 2 {
			t.Fatalf("unexpected second line: %+v", lines[1])
		}
		if lines[2].Label != "Salon" || lines[3].Label != "Canapé (Salon)" {
			t.Fatalf("unexpected tail lines: %+v", lines[2:])
		}
	})
}

func TestQuoteInventorySelection(t *testing.T) {
	q := Quote{FurnitureInventory: []FurnitureItem{ItemSofa}}
	if q.Inventory().Empty() {
		t.Fatalf("expected flat inventory")
	}

	inv := NewRoomInventory()
	inv.SetRoomQuantity(RoomBedroom, 1)
	q.RoomInventory = inv
	lines := q.Inventory().LineItems()
	if len(lines) != 1 || lines[0].Label != "Chambre" {
		t.Fatalf("expected room inventory to take precedence, got %+v", lines)
	}
}
