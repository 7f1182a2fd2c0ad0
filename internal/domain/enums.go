package domain

// Role is a system-wide permission level held by a user.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleAshramUser Role = "ASHRAM_USER"
	RoleHeadOffice Role = "HEAD_OFFICE"
)

func Roles() []Role {
	return []Role{RoleAdmin, RoleAshramUser, RoleHeadOffice}
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleAshramUser, RoleHeadOffice:
		return true
	}
	return false
}

// AssetCategory classifies a physical asset.
type AssetCategory string

const (
	CategoryCar        AssetCategory = "CAR"
	CategoryElectrical AssetCategory = "ELECTRICAL"
	CategoryLaptop     AssetCategory = "LAPTOP"
	CategoryFurniture  AssetCategory = "FURNITURE"
	CategoryOther      AssetCategory = "OTHER"
)

func AssetCategories() []AssetCategory {
	return []AssetCategory{CategoryCar, CategoryElectrical, CategoryLaptop, CategoryFurniture, CategoryOther}
}

func (c AssetCategory) Valid() bool {
	switch c {
	case CategoryCar, CategoryElectrical, CategoryLaptop, CategoryFurniture, CategoryOther:
		return true
	}
	return false
}

// Abbrev returns the three-letter form used in asset tags.
func (c AssetCategory) Abbrev() string {
	s := string(c)
	if len(s) > 3 {
		s = s[:3]
	}
	return s
}

// AssetStatus is the lifecycle state of an asset.
type AssetStatus string

const (
	StatusActive   AssetStatus = "ACTIVE"
	StatusArchived AssetStatus = "ARCHIVED"
	StatusSold     AssetStatus = "SOLD"
)

func AssetStatuses() []AssetStatus {
	return []AssetStatus{StatusActive, StatusArchived, StatusSold}
}

func (s AssetStatus) Valid() bool {
	switch s {
	case StatusActive, StatusArchived, StatusSold:
		return true
	}
	return false
}

// ReminderType classifies a maintenance or compliance reminder.
type ReminderType string

const (
	ReminderInsurance   ReminderType = "INSURANCE"
	ReminderTax         ReminderType = "TAX"
	ReminderMaintenance ReminderType = "MAINTENANCE"
	ReminderWarranty    ReminderType = "WARRANTY"
	ReminderCustom      ReminderType = "CUSTOM"
)

func ReminderTypes() []ReminderType {
	return []ReminderType{ReminderInsurance, ReminderTax, ReminderMaintenance, ReminderWarranty, ReminderCustom}
}

func (t ReminderType) Valid() bool {
	switch t {
	case ReminderInsurance, ReminderTax, ReminderMaintenance, ReminderWarranty, ReminderCustom:
		return true
	}
	return false
}

// DocumentCategory classifies an attached document.
type DocumentCategory string

const (
	DocumentInvoice   DocumentCategory = "INVOICE"
	DocumentWarranty  DocumentCategory = "WARRANTY"
	DocumentRC        DocumentCategory = "RC"
	DocumentInsurance DocumentCategory = "INSURANCE"
	DocumentPhoto     DocumentCategory = "PHOTO"
	DocumentOther     DocumentCategory = "OTHER"
)

func DocumentCategories() []DocumentCategory {
	return []DocumentCategory{DocumentInvoice, DocumentWarranty, DocumentRC, DocumentInsurance, DocumentPhoto, DocumentOther}
}

func (c DocumentCategory) Valid() bool {
	switch c {
	case DocumentInvoice, DocumentWarranty, DocumentRC, DocumentInsurance, DocumentPhoto, DocumentOther:
		return true
	}
	return false
}
