package repositories

import "shopit/internal/models"

// SeedCatalog installs the storefront's product catalog. Prices are whole
// rupees.
func SeedCatalog(catalog *MemoryCatalog) {
	for _, product := range catalogProducts {
		catalog.Add(product)
	}
}

var catalogProducts = []models.Product{
	{
		ID:            "1",
		Name:          "Samsung Crystal 4K Ultra HD Smart TV",
		Image:         "https://images.unsplash.com/photo-1601944179066-29b8f7e29c3d?q=80&w=2070&auto=format&fit=crop",
		Price:         44990,
		OriginalPrice: 59990,
		Rating:        4.6,
		ReviewCount:   120,
		Discount:      30,
		Condition:     "New",
		Stock:         15,
		Category:      "Electronics",
		IsNewArrival:  true,
		IsDeal:        true,
	},
	{
		ID:            "2",
		Name:          "Levi's Men's 511 Slim Fit Jeans",
		Image:         "https://images.unsplash.com/photo-1542272604-787c3835535d?q=80&w=1926&auto=format&fit=crop",
		Price:         2999,
		OriginalPrice: 3999,
		Rating:        4.3,
		ReviewCount:   85,
		Discount:      25,
		Condition:     "New",
		Stock:         100,
		Category:      "Clothing",
		IsNewArrival:  true,
		IsDeal:        true,
	},
	{
		ID:            "3",
		Name:          "Kindle Paperwhite (8 GB)",
		Image:         "https://images.unsplash.com/photo-1592496001020-d31bd830651f?q=80&w=1974&auto=format&fit=crop",
		Price:         7999,
		OriginalPrice: 12999,
		Rating:        4.8,
		ReviewCount:   210,
		Discount:      38,
		Condition:     "Used",
		Stock:         5,
		Category:      "Electronics",
		IsDeal:        true,
		IsSecondHand:  true,
	},
	{
		ID:            "4",
		Name:          "Canon EOS 80D DSLR Camera",
		Image:         "https://images.unsplash.com/photo-1516035069371-29a1b244cc32?q=80&w=1964&auto=format&fit=crop",
		Price:         54990,
		OriginalPrice: 89990,
		Rating:        4.5,
		ReviewCount:   65,
		Discount:      39,
		Condition:     "Used",
		Stock:         2,
		Category:      "Electronics",
		IsDeal:        true,
		IsSecondHand:  true,
	},
	{
		ID:            "5",
		Name:          "Adidas Ultraboost Running Shoes",
		Image:         "https://images.unsplash.com/photo-1608231387042-66d1773070a5?q=80&w=1974&auto=format&fit=crop",
		Price:         8999,
		OriginalPrice: 14999,
		Rating:        4.2,
		ReviewCount:   150,
		Discount:      40,
		Condition:     "Used",
		Stock:         8,
		Category:      "Clothing",
		IsDeal:        true,
		IsSecondHand:  true,
	},
	{
		ID:            "6",
		Name:          "Apple MacBook Air M2",
		Image:         "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?q=80&w=1926&auto=format&fit=crop",
		Price:         89990,
		OriginalPrice: 119990,
		Rating:        4.9,
		ReviewCount:   78,
		Discount:      25,
		Condition:     "New",
		Stock:         10,
		Category:      "Electronics",
		IsNewArrival:  true,
		IsDeal:        true,
	},
	{
		ID:            "7",
		Name:          "Sony WH-1000XM4 Wireless Headphones",
		Image:         "https://images.unsplash.com/photo-1546435770-a3e426bf472b?q=80&w=2065&auto=format&fit=crop",
		Price:         19990,
		OriginalPrice: 29990,
		Rating:        4.7,
		ReviewCount:   230,
		Discount:      33,
		Condition:     "New",
		Stock:         25,
		Category:      "Electronics",
		IsNewArrival:  true,
		IsDeal:        true,
	},
	{
		ID:            "8",
		Name:          "IKEA MALM Bed Frame",
		Image:         "https://images.unsplash.com/photo-1505693416388-ac5ce068fe85?q=80&w=2070&auto=format&fit=crop",
		Price:         15990,
		OriginalPrice: 21990,
		Rating:        4.0,
		ReviewCount:   45,
		Discount:      27,
		Condition:     "Used",
		Stock:         3,
		Category:      "Home",
		IsDeal:        true,
		IsSecondHand:  true,
	},
	{
		ID:            "9",
		Name:          "Bose QuietComfort Earbuds",
		Image:         "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?q=80&w=1932&auto=format&fit=crop",
		Price:         21990,
		OriginalPrice: 26990,
		Rating:        4.7,
		ReviewCount:   112,
		Discount:      18,
		Condition:     "New",
		Stock:         18,
		Category:      "Electronics",
		IsNewArrival:  true,
		IsDeal:        true,
	},
	{
		ID:            "10",
		Name:          "Nike Air Force 1 '07",
		Image:         "https://images.unsplash.com/photo-1595950653106-6c9ebd614d3a?q=80&w=1974&auto=format&fit=crop",
		Price:         7495,
		OriginalPrice: 9495,
		Rating:        4.8,
		ReviewCount:   320,
		Discount:      21,
		Condition:     "New",
		Stock:         45,
		Category:      "Clothing",
		IsNewArrival:  true,
		IsDeal:        true,
	},
	{
		ID:            "11",
		Name:          "iPhone 14 Pro (Used, Excellent Condition)",
		Image:         "https://images.unsplash.com/photo-1663499482523-1c0c1bae4ce1?q=80&w=1972&auto=format&fit=crop",
		Price:         79990,
		OriginalPrice: 129900,
		Rating:        4.6,
		ReviewCount:   48,
		Discount:      38,
		Condition:     "Used",
		Stock:         3,
		Category:      "Electronics",
		IsDeal:        true,
		IsSecondHand:  true,
	},
	{
		ID:            "12",
		Name:          "Dyson V11 Absolute Cordless Vacuum",
		Image:         "https://images.unsplash.com/photo-1558317374-067fb5f30001?q=80&w=1974&auto=format&fit=crop",
		Price:         44900,
		OriginalPrice: 52900,
		Rating:        4.9,
		ReviewCount:   75,
		Discount:      15,
		Condition:     "New",
		Stock:         7,
		Category:      "Home",
		IsNewArrival:  true,
		IsDeal:        true,
	},
	{
		ID:            "13",
		Name:          "Samsung Galaxy Watch 5",
		Image:         "https://images.unsplash.com/photo-1579586337278-3befd40fd17a?q=80&w=1972&auto=format&fit=crop",
		Price:         27999,
		OriginalPrice: 33999,
		Rating:        4.5,
		ReviewCount:   92,
		Discount:      18,
		Condition:     "New",
		Stock:         12,
		Category:      "Electronics",
		IsNewArrival:  true,
		IsDeal:        true,
	},
	{
		ID:            "14",
		Name:          "Vintage Leather Sofa",
		Image:         "https://images.unsplash.com/photo-1550581190-9c1c48d21d6c?q=80&w=2069&auto=format&fit=crop",
		Price:         35990,
		OriginalPrice: 59990,
		Rating:        4.2,
		ReviewCount:   28,
		Discount:      40,
		Condition:     "Used",
		Stock:         1,
		Category:      "Home",
		IsDeal:        true,
		IsSecondHand:  true,
	},
	{
		ID:            "15",
		Name:          "Nespresso Vertuo Coffee Machine",
		Image:         "https://images.unsplash.com/photo-1608354580875-30bd4168b351?q=80&w=1974&auto=format&fit=crop",
		Price:         12999,
		OriginalPrice: 17999,
		Rating:        4.7,
		ReviewCount:   156,
		Discount:      28,
		Condition:     "New",
		Stock:         9,
		Category:      "Home",
		IsNewArrival:  true,
		IsDeal:        true,
	},
	{
		ID:            "16",
		Name:          "Refurbished iPad Pro 12.9-inch",
		Image:         "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?q=80&w=1975&auto=format&fit=crop",
		Price:         59990,
		OriginalPrice: 89990,
		Rating:        4.6,
		ReviewCount:   42,
		Discount:      33,
		Condition:     "Used",
		Stock:         4,
		Category:      "Electronics",
		IsDeal:        true,
		IsSecondHand:  true,
	},
}
