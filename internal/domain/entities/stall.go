package entities

// StallType is how the stall is built (barraca aberta, fechada ou trailer).
type StallType string

const (
	StallTypeOpen    StallType = "OPEN"
	StallTypeClosed  StallType = "CLOSED"
	StallTypeTrailer StallType = "TRAILER"
)

func (t StallType) Valid() bool {
	switch t {
	case StallTypeOpen, StallTypeClosed, StallTypeTrailer:
		return true
	}
	return false
}

// StallSize is the footprint sold by a fair. TRAILER is only valid for trailers.
type StallSize string

const (
	StallSize2x2     StallSize = "SIZE_2X2"
	StallSize3x3     StallSize = "SIZE_3X3"
	StallSize3x6     StallSize = "SIZE_3X6"
	StallSizeTrailer StallSize = "TRAILER"
)

// Physical reports whether the size is one of the three measured footprints.
func (s StallSize) Physical() bool {
	switch s {
	case StallSize2x2, StallSize3x3, StallSize3x6:
		return true
	}
	return false
}

func (s StallSize) Valid() bool {
	return s.Physical() || s == StallSizeTrailer
}

// Label is the pt-BR name shown next to a size.
func (s StallSize) Label() string {
	switch s {
	case StallSize2x2:
		return "2m x 2m"
	case StallSize3x3:
		return "3m x 3m"
	case StallSize3x6:
		return "3m x 6m"
	case StallSizeTrailer:
		return "Trailer"
	}
	return string(s)
}

// Server-side bounds the upsert payload must respect.
const (
	MachinesQtyMin  = 0
	MachinesQtyMax  = 5
	TeamQtyMin      = 1
	TeamQtyMax      = 15
	EquipmentQtyMin = 1
	EquipmentQtyMax = 99
	ProductNameMax  = 40
)

// Stall is a stall (barraca) as returned by the portal backend.
type Stall struct {
	ID           string         `json:"id" validate:"required"`
	PdvName      string         `json:"pdvName"`
	MachinesQty  int            `json:"machinesQty" validate:"min=0"`
	BannerName   *string        `json:"bannerName"`
	MainCategory *string        `json:"mainCategory"`
	StallType    StallType      `json:"stallType" validate:"oneof=OPEN CLOSED TRAILER"`
	StallSize    StallSize      `json:"stallSize" validate:"oneof=SIZE_2X2 SIZE_3X3 SIZE_3X6 TRAILER"`
	TeamQty      int            `json:"teamQty" validate:"min=1"`
	Categories   []MenuCategory `json:"categories" validate:"dive"`
	Equipments   []Equipment    `json:"equipments" validate:"dive"`
	PowerNeed    *PowerNeed     `json:"powerNeed"`
	CreatedAt    string         `json:"createdAt"`
	UpdatedAt    string         `json:"updatedAt"`
}

type MenuCategory struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Order    int           `json:"order" validate:"min=0"`
	Products []MenuProduct `json:"products" validate:"dive"`
}

type MenuProduct struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents" validate:"min=0"`
	Order      int    `json:"order" validate:"min=0"`
}

type Equipment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Qty  int    `json:"qty" validate:"min=1"`
}

type PowerNeed struct {
	Outlets110   int     `json:"outlets110" validate:"min=0"`
	Outlets220   int     `json:"outlets220" validate:"min=0"`
	OutletsOther int     `json:"outletsOther" validate:"min=0"`
	NeedsGas     bool    `json:"needsGas"`
	GasNotes     *string `json:"gasNotes"`
	Notes        *string `json:"notes"`
}

type PageMeta struct {
	Page       int `json:"page" validate:"min=1"`
	PageSize   int `json:"pageSize" validate:"min=1"`
	TotalItems int `json:"totalItems" validate:"min=0"`
	TotalPages int `json:"totalPages" validate:"min=1"`
}

// StallPage is one page of the owner's stalls.
type StallPage struct {
	Items []Stall  `json:"items" validate:"dive"`
	Meta  PageMeta `json:"meta"`
}

// UpsertStall is the create/update payload accepted by POST /stalls and
// PATCH /stalls/:id.
type UpsertStall struct {
	PdvName      string               `json:"pdvName" validate:"required"`
	MachinesQty  int                  `json:"machinesQty" validate:"min=0,max=5"`
	BannerName   string               `json:"bannerName,omitempty"`
	MainCategory string               `json:"mainCategory,omitempty"`
	StallType    StallType            `json:"stallType" validate:"oneof=OPEN CLOSED TRAILER"`
	StallSize    StallSize            `json:"stallSize" validate:"oneof=SIZE_2X2 SIZE_3X3 SIZE_3X6 TRAILER"`
	TeamQty      int                  `json:"teamQty" validate:"min=1,max=15"`
	Categories   []UpsertMenuCategory `json:"categories" validate:"dive"`
	Equipments   []UpsertEquipment    `json:"equipments" validate:"dive"`
	Power        *UpsertPower         `json:"power,omitempty"`
}

type UpsertMenuCategory struct {
	Name     string              `json:"name" validate:"required"`
	Order    int                 `json:"order" validate:"min=0"`
	Products []UpsertMenuProduct `json:"products" validate:"min=1,dive"`
}

type UpsertMenuProduct struct {
	Name       string `json:"name" validate:"required,max=40"`
	PriceCents int64  `json:"priceCents" validate:"min=0"`
	Order      int    `json:"order" validate:"min=0"`
}

type UpsertEquipment struct {
	Name string `json:"name" validate:"required"`
	Qty  int    `json:"qty" validate:"min=1,max=99"`
}

type UpsertPower struct {
	Outlets110   int    `json:"outlets110" validate:"min=0"`
	Outlets220   int    `json:"outlets220" validate:"min=0"`
	OutletsOther int    `json:"outletsOther" validate:"min=0"`
	NeedsGas     bool   `json:"needsGas"`
	GasNotes     string `json:"gasNotes,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// UpsertStallResult is what the backend answers to a create/update.
type UpsertStallResult struct {
	StallID string `json:"stallId" validate:"required"`
}
