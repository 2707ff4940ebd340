package provider

// ModelType identifies a standard data model. Each model type maps to a
// fixed Go type in pkg/models:
//
//	CoinList   []models.CoinSummary
//	CoinDetail *models.CoinDetail
//	CoinTicker *models.Ticker
//	MarketNews []models.NewsArticle
type ModelType string

const (
	ModelCoinList   ModelType = "CoinList"
	ModelCoinDetail ModelType = "CoinDetail"
	ModelCoinTicker ModelType = "CoinTicker"
	ModelMarketNews ModelType = "MarketNews"
)

// AllModels lists every standard model type, in display order.
func AllModels() []ModelType {
	return []ModelType{
		ModelCoinList,
		ModelCoinDetail,
		ModelCoinTicker,
		ModelMarketNews,
	}
}
