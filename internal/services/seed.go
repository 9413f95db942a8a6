package services

import "gbce/internal/models"

// demoListings is the fixed demonstration catalog. In production this would
// come from a reference-data feed.
var demoListings = []models.Instrument{
	{Symbol: "TEA", Name: "Tea Co.", Category: models.CategoryOrdinary, ParValue: 100, LastDividend: 0, FixedRate: models.NoFixedRate},
	{Symbol: "POP", Name: "Pop Works", Category: models.CategoryOrdinary, ParValue: 100, LastDividend: 8, FixedRate: models.NoFixedRate},
	{Symbol: "ALE", Name: "Ale Brewing", Category: models.CategoryOrdinary, ParValue: 60, LastDividend: 23, FixedRate: models.NoFixedRate},
	{Symbol: "GIN", Name: "Gin Distillers", Category: models.CategoryPreferred, ParValue: 100, LastDividend: 8, FixedRate: 2},
	{Symbol: "JOE", Name: "Joe's Coffee", Category: models.CategoryOrdinary, ParValue: 250, LastDividend: 13, FixedRate: models.NoFixedRate},
}
