package catalog

import "storefront/pkg/store/domain/model"

var defaultProducts = []model.Product{
	{
		ID:          "iphone-15-pro-max",
		Name:        "iPhone 15 Pro Max",
		Category:    model.CategoryIPhone,
		Tagline:     "Titanium. So strong. So light. So Pro.",
		Price:       1550000,
		ImageURL:    "https://media.croma.com/image/upload/v1694674253/Croma%20Assets/Communication/Mobiles/Images/300822_0_p1p9uq.png",
		Description: "Experience the A17 Pro chip, a customizable Action button, and the most powerful iPhone camera system ever.",
		Condition:   model.ConditionBrandNew,
		Specs: []model.Spec{
			{Key: "Display", Value: "6.7-inch Super Retina XDR"},
			{Key: "Chip", Value: "A17 Pro with 6-core GPU"},
			{Key: "Camera", Value: "Pro camera system (48MP Main)"},
			{Key: "Material", Value: "Aerospace-grade titanium design"},
		},
		Warranty:   "1-Year Apple Limited Warranty",
		SalesCount: 150,
	},
	{
		ID:          "samsung-s24-ultra",
		Name:        "Samsung Galaxy S24 Ultra",
		Category:    model.CategorySamsung,
		Tagline:     "Welcome to the era of mobile AI.",
		Price:       1400000,
		ImageURL:    "https://images.samsung.com/is/image/samsung/p6pim/za/sm-s928bztqafw/gallery/za-galaxy-s24-ultra-sm-s928-sm-s928bztqafw-539455322?$650_519_PNG$",
		Description: "Unleash new levels of creativity and productivity with Galaxy AI. Features the S Pen and a stunning flat display.",
		Condition:   model.ConditionBrandNew,
		Specs: []model.Spec{
			{Key: "Display", Value: "6.8-inch Dynamic AMOLED 2X"},
			{Key: "Chip", Value: "Snapdragon® 8 Gen 3 for Galaxy"},
			{Key: "Camera", Value: "200MP Wide-angle Camera"},
			{Key: "Feature", Value: "Built-in S Pen & Galaxy AI"},
		},
		Warranty:   "2-Year Manufacturer Warranty",
		SalesCount: 145,
	},
	{
		ID:          "iphone-14-pro",
		Name:        "iPhone 14 Pro",
		Category:    model.CategoryIPhone,
		Tagline:     "Pro. Beyond.",
		Price:       980000,
		ImageURL:    "https://store.storeimages.cdn-apple.com/4668/as-images.apple.com/is/iphone-14-pro-finish-select-202209-6-1inch-deeppurple?wid=5120&hei=2880&fmt=p-jpg&qlt=80&.v=1663703840578",
		Description: "Featuring the Dynamic Island, a 48MP Main camera for up to 4x greater resolution, and Cinematic mode now in 4K Dolby Vision.",
		Condition:   model.ConditionForeignUsed,
		Specs: []model.Spec{
			{Key: "Display", Value: "6.1-inch Super Retina XDR"},
			{Key: "Chip", Value: "A16 Bionic chip"},
			{Key: "Camera", Value: "Pro camera system (48MP Main)"},
			{Key: "Feature", Value: "Dynamic Island"},
		},
		Warranty:   "6-Month EasyHub Warranty",
		SalesCount: 180,
	},
	{
		ID:          "samsung-z-fold5",
		Name:        "Samsung Galaxy Z Fold5",
		Category:    model.CategorySamsung,
		Tagline:     "The ultimate multitasking powerhouse.",
		Price:       1250000,
		ImageURL:    "https://images.samsung.com/is/image/samsung/p6pim/za/sm-f946blgaafa/gallery/za-galaxy-z-fold5-sm-f946-sm-f946blgaafa-537332309?$650_519_PNG$",
		Description: "A massive screen that fits in your pocket. The immersive, tablet-sized screen lets you game, view, and work like never before.",
		Condition:   model.ConditionBrandNew,
		Specs: []model.Spec{
			{Key: "Main Display", Value: "7.6-inch Dynamic AMOLED 2X"},
			{Key: "Cover Display", Value: "6.2-inch Dynamic AMOLED 2X"},
			{Key: "Performance", Value: "Massive 12GB RAM"},
			{Key: "Feature", Value: "Multi-window for PC-like multitasking"},
		},
		Warranty:   "2-Year Manufacturer Warranty",
		SalesCount: 95,
	},
	{
		ID:          "jbl-charge-5",
		Name:        "JBL Charge 5",
		Category:    model.CategoryAudio,
		Tagline:     "Bold sound for any adventure.",
		Price:       85000,
		ImageURL:    "https://www.jbl.com/dw/image/v2/BFND_PRD/on/demandware.static/-/Sites-master-catalog_jbl/default/dw772b8349/JBL_Charge_5_Product_Image_Hero_Black.png?sw=1600&sh=1600",
		Description: "Take the party with you with the powerful JBL Pro Sound. This portable speaker is IP67 waterproof and dustproof and offers up to 20 hours of playtime.",
		Condition:   model.ConditionBrandNew,
		Specs: []model.Spec{
			{Key: "Playtime", Value: "Up to 20 hours"},
			{Key: "Feature", Value: "IP67 waterproof and dustproof"},
			{Key: "Connectivity", Value: "Bluetooth 5.1"},
			{Key: "Power", Value: "Built-in powerbank to charge your devices"},
		},
		Warranty:   "1-Year Manufacturer Warranty",
		SalesCount: 250,
	},
	{
		ID:          "iphone-13",
		Name:        "iPhone 13",
		Category:    model.CategoryIPhone,
		Tagline:     "Your new superpower.",
		Price:       650000,
		ImageURL:    "https://www.apple.com/v/iphone-13/l/images/overview/hero/hero_green__rz0u5fdewmqq_large.png",
		Description: "Our most advanced dual‑camera system ever. A huge leap in battery life. And a brighter Super Retina XDR display.",
		Condition:   model.ConditionForeignUsed,
		Specs: []model.Spec{
			{Key: "Display", Value: "6.1-inch Super Retina XDR"},
			{Key: "Chip", Value: "A15 Bionic chip"},
			{Key: "Camera", Value: "Advanced 12MP dual-camera system"},
			{Key: "Feature", Value: "Ceramic Shield, tougher than any smartphone glass"},
		},
		Warranty:   "6-Month EasyHub Warranty",
		SalesCount: 210,
	},
}

var defaultAccessories = []model.Product{
	{
		ID:          "apple-20w-adapter",
		Name:        "Apple 20W USB-C Power Adapter",
		Category:    model.CategoryAccessory,
		Price:       25000,
		ImageURL:    "https://www.apple.com/v/power-and-cables/l/images/overview/adapter_usbc_20w__ckxxw07j39e6_large.jpg",
		Description: "Offers fast, efficient charging at home, in the office, or on the go. Compatible with any USB-C enabled device.",
		SalesCount:  300,
	},
	{
		ID:          "samsung-45w-adapter",
		Name:        "Samsung 45W Power Adapter",
		Category:    model.CategoryAccessory,
		Price:       30000,
		ImageURL:    "https://images.samsung.com/is/image/samsung/p6pim/za/ep-t4510xbegeu/gallery/za-45w-power-adapter-ep-t4510xbegeu-530932462?$650_519_PNG$",
		Description: "Give your devices the powerful charging support they deserve. Enjoy Super Fast Charging for a wide range of tech essentials.",
		SalesCount:  180,
	},
	{
		ID:          "anker-powerbank-737",
		Name:        "Anker 737 Power Bank",
		Category:    model.CategoryAccessory,
		Price:       75000,
		ImageURL:    "https://cdn.shopify.com/s/files/1/0551/8157/7739/products/A1289111-3-1_1024x1024.webp?v=1661763784",
		Description: "A massive 24,000mAh capacity and 140W of power, perfect for charging laptops, phones, and all your tech on the go.",
		SalesCount:  190,
	},
	{
		ID:          "iphone-silicone-case",
		Name:        "iPhone Silicone Case with MagSafe",
		Category:    model.CategoryAccessory,
		Price:       35000,
		ImageURL:    "https://store.storeimages.cdn-apple.com/4982/as-images.apple.com/is/MPRY3_AV2?wid=1144&hei=1144&fmt=jpeg&qlt=90&.v=1693522774983",
		Description: "A delightful way to protect your iPhone. The silky, soft-touch finish of the silicone exterior feels great in your hand.",
		SalesCount:  220,
	},
}
