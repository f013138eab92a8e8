package model

// Administrative geography chain: district → block → panchayat → hamlet.

type DistrictModel struct {
	DistrictID   uint   `gorm:"column:district_id;primaryKey;autoIncrement" json:"district_id"`
	DistrictName string `gorm:"column:district_name;type:varchar(100);not null;uniqueIndex" json:"district_name"`
}

func (DistrictModel) TableName() string { return "districts" }

type BlockModel struct {
	BlockID    uint   `gorm:"column:block_id;primaryKey;autoIncrement" json:"block_id"`
	BlockName  string `gorm:"column:block_name;type:varchar(100);not null" json:"block_name"`
	DistrictID uint   `gorm:"column:district_id;not null;index" json:"district_id"`

	District *DistrictModel `gorm:"foreignKey:DistrictID;references:DistrictID" json:"district,omitempty"`
}

func (BlockModel) TableName() string { return "blocks" }

type PanchayatModel struct {
	PanchayatID   uint   `gorm:"column:panchayat_id;primaryKey;autoIncrement" json:"panchayat_id"`
	PanchayatName string `gorm:"column:panchayat_name;type:varchar(100);not null" json:"panchayat_name"`
	BlockID       uint   `gorm:"column:block_id;not null;index" json:"block_id"`

	Block *BlockModel `gorm:"foreignKey:BlockID;references:BlockID" json:"block,omitempty"`
}

func (PanchayatModel) TableName() string { return "panchayats" }

type HamletModel struct {
	HamletID    uint   `gorm:"column:hamlet_id;primaryKey;autoIncrement" json:"hamlet_id"`
	HamletName  string `gorm:"column:hamlet_name;type:varchar(100);not null" json:"hamlet_name"`
	PanchayatID uint   `gorm:"column:panchayat_id;not null;index" json:"panchayat_id"`

	Panchayat *PanchayatModel `gorm:"foreignKey:PanchayatID;references:PanchayatID" json:"panchayat,omitempty"`
}

func (HamletModel) TableName() string { return "hamlets" }
