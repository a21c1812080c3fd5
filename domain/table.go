package domain

// Table is a mongo collection name
type Table string

const (
	TableSaleListings  Table = "sale_listings"
	TableHighestBids   Table = "highest_bids"
	TableCounters      Table = "counters"
	TableMarketConfigs Table = "market_configs"
	TableWhitelist     Table = "whitelist"
	TableMarketEvents  Table = "market_events"
	TableModerators    Table = "moderators"
)
