package entities

import "sort"

// FurnitureItem enumerates the movable objects the funnel knows about.
type FurnitureItem string

const (
	ItemSofa           FurnitureItem = "sofa"
	ItemBed            FurnitureItem = "bed"
	ItemWardrobe       FurnitureItem = "wardrobe"
	ItemTable          FurnitureItem = "table"
	ItemFridge         FurnitureItem = "fridge"
	ItemWashingMachine FurnitureItem = "washingmachine"
	ItemTV             FurnitureItem = "tv"
	ItemPiano          FurnitureItem = "piano"
	ItemDishwasher     FurnitureItem = "dishwasher"
	ItemBooks          FurnitureItem = "books"
	ItemBoxes          FurnitureItem = "boxes"
	ItemOther          FurnitureItem = "other"
)

func (i FurnitureItem) Valid() bool {
	switch i {
	case ItemSofa, ItemBed, ItemWardrobe, ItemTable, ItemFridge, ItemWashingMachine,
		ItemTV, ItemPiano, ItemDishwasher, ItemBooks, ItemBoxes, ItemOther:
		return true
	}
	return false
}

func (i FurnitureItem) Label() string {
	switch i {
	case ItemSofa:
		return "Canapé"
	case ItemBed:
		return "Lit"
	case ItemWardrobe:
		return "Armoire"
	case ItemTable:
		return "Table"
	case ItemFridge:
		return "Réfrigérateur"
	case ItemWashingMachine:
		return "Lave-linge"
	case ItemTV:
		return "Télévision"
	case ItemPiano:
		return "Piano"
	case ItemDishwasher:
		return "Lave-vaisselle"
	case ItemBooks:
		return "Bibliothèque"
	case ItemBoxes:
		return "Cartons divers"
	case ItemOther:
		return "Autres objets lourds"
	}
	return string(i)
}

// RoomType identifies a room in the two-level inventory variant.
type RoomType string

const (
	RoomBedroom    RoomType = "bedroom"
	RoomLivingRoom RoomType = "livingRoom"
	RoomKitchen    RoomType = "kitchen"
	RoomBathroom   RoomType = "bathroom"
	RoomOffice     RoomType = "office"
	RoomGarage     RoomType = "garage"
	RoomBasement   RoomType = "basement"
	RoomOther      RoomType = "other"
)

func (r RoomType) Valid() bool {
	switch r {
	case RoomBedroom, RoomLivingRoom, RoomKitchen, RoomBathroom, RoomOffice, RoomGarage, RoomBasement, RoomOther:
		return true
	}
	return false
}

func (r RoomType) Label() string {
	switch r {
	case RoomBedroom:
		return "Chambre"
	case RoomLivingRoom:
		return "Salon"
	case RoomKitchen:
		return "Cuisine"
	case RoomBathroom:
		return "Salle de bain"
	case RoomOffice:
		return "Bureau"
	case RoomGarage:
		return "Garage"
	case RoomBasement:
		return "Cave"
	case RoomOther:
		return "Autre pièce"
	}
	return string(r)
}

// LineItem is a single "what will be moved" entry in human-readable form.
type LineItem struct {
	Label    string `json:"label"`
	Quantity int    `json:"quantity"`
}

// Inventory abstracts over the two structurally different inventory
// representations (flat toggle set vs room→item quantities) observed in the
// quote wizard variants. Both model the same capability: what will be moved.
type Inventory interface {
	LineItems() []LineItem
	Empty() bool
}

// FlatInventory is the boolean-toggle inventory variant: each selected item
// counts once.
type FlatInventory []FurnitureItem

var _ Inventory = FlatInventory(nil)

func (f FlatInventory) LineItems() []LineItem {
	items := make([]LineItem, 0, len(f))
	for _, it := range f {
		items = append(items, LineItem{Label: it.Label(), Quantity: 1})
	}
	return items
}

func (f FlatInventory) Empty() bool { return len(f) == 0 }

const (
	// MaxRoomQuantity bounds how many instances of one room type may be declared.
	MaxRoomQuantity = 10
	// MaxRoomItemQuantity bounds per-room item counts.
	MaxRoomItemQuantity = 50
)

// RoomSelection is the per-room slice of the two-level inventory: how many
// rooms of this type exist, and how many of each item they hold.
type RoomSelection struct {
	Quantity int                   `json:"quantity"`
	Items    map[FurnitureItem]int `json:"items,omitempty"`
}

// RoomInventory is the two-level inventory variant. Quantities are clamped at
// the setters, mirroring the input controls; reads never re-validate.
type RoomInventory struct {
	Rooms map[RoomType]RoomSelection `json:"rooms"`
}

var _ Inventory = (*RoomInventory)(nil)

func NewRoomInventory() *RoomInventory {
	return &RoomInventory{Rooms: make(map[RoomType]RoomSelection)}
}

// SetRoomQuantity records how many rooms of the given type will be moved,
// clamped to [1, MaxRoomQuantity]. A quantity of zero (or less) deselects the
// room and drops its item counts.
func (r *RoomInventory) SetRoomQuantity(room RoomType, quantity int) {
	if r.Rooms == nil {
		r.Rooms = make(map[RoomType]RoomSelection)
	}
	if quantity <= 0 {
		delete(r.Rooms, room)
		return
	}
	if quantity > MaxRoomQuantity {
		quantity = MaxRoomQuantity
	}
	sel := r.Rooms[room]
	sel.Quantity = quantity
	r.Rooms[room] = sel
}

// SetItemQuantity records an item count inside a selected room, clamped to
// [0, MaxRoomItemQuantity]. Counts on unselected rooms are ignored.
func (r *RoomInventory) SetItemQuantity(room RoomType, item FurnitureItem, quantity int) {
	sel, ok := r.Rooms[room]
	if !ok {
		return
	}
	if quantity < 0 {
		quantity = 0
	}
	if quantity > MaxRoomItemQuantity {
		quantity = MaxRoomItemQuantity
	}
	if sel.Items == nil {
		sel.Items = make(map[FurnitureItem]int)
	}
	if quantity == 0 {
		delete(sel.Items, item)
	} else {
		sel.Items[item] = quantity
	}
	r.Rooms[room] = sel
}

// SelectedRooms counts rooms with a quantity above zero.
func (r *RoomInventory) SelectedRooms() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, sel := range r.Rooms {
		if sel.Quantity > 0 {
			n++
		}
	}
	return n
}

func (r *RoomInventory) Empty() bool { return r.SelectedRooms() == 0 }

// LineItems flattens the room→item structure into stable, human-readable
// lines: one per room, then one per item scoped to that room.
func (r *RoomInventory) LineItems() []LineItem {
	if r == nil {
		return nil
	}
	rooms := make([]RoomType, 0, len(r.Rooms))
	for room := range r.Rooms {
		rooms = append(rooms, room)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i] < rooms[j] })

	var lines []LineItem
	for _, room := range rooms {
		sel := r.Rooms[room]
		if sel.Quantity <= 0 {
			continue
		}
		lines = append(lines, LineItem{Label: room.Label(), Quantity: sel.Quantity})

		items := make([]FurnitureItem, 0, len(sel.Items))
		for it := range sel.Items {
			items = append(items, it)
		}
		sort.Slice(items, func(i, j int) bool { return items[i] < items[j] })
		for _, it := range items {
			if qty := sel.Items[it]; qty > 0 {
				lines = append(lines, LineItem{Label: it.Label() + " (" + room.Label() + ")", Quantity: qty})
			}
		}
	}
	return lines
}
