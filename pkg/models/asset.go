package models

// AssetClass represents the type of financial asset
type AssetClass string

const (
	AssetClassGold    AssetClass = "gold"
	AssetClassStock   AssetClass = "stock"
	AssetClassCrypto  AssetClass = "crypto"
	AssetClassUnknown AssetClass = "unknown"
)

// TonneToOunce converts metric tonnes to troy ounces
const TonneToOunce = 35273.96194958

// DefaultAboveGroundTonnes is the estimated total stock of mined gold
// in existence, in metric tonnes
const DefaultAboveGroundTonnes = 212582.0
