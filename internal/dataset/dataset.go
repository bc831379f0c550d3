// Package dataset holds the fixed development dataset written by the seeder.
package dataset

import "github.com/Karl-Horning/nextjs-shoe-store/internal/model"

type shoeRow struct {
	ShoeID string
	Brand  string
	Model  string
	Price  string
	Image  string
}

var catalog = []shoeRow{
	{ShoeID: "ad8bd387-511e-44b4-8c2f-c1902bc8b764", Brand: "Nike", Model: "Pegasus FlyEase By You", Price: "139.99", Image: "nike_pegasus_flyease_by_you.png"},
	{ShoeID: "923e0c42-c180-4fc0-9796-bcd4902ffdfe", Brand: "New Balance", Model: "RC3", Price: "109.99", Image: "new_balance_rc30.png"},
	{ShoeID: "981ced76-570c-42f9-bba5-712f84d826a2", Brand: "Under Armour", Model: "Flow Dynamic Training Shoes", Price: "58.99", Image: "under_armour_flow_dynamic_training_shoes.png"},
	{ShoeID: "1e7e418a-2182-4e85-8eb8-583fc2b7a20a", Brand: "Nike", Model: "Nike Air Max Dn", Price: "154.99", Image: "nike_nike_air_max_dn.jpg"},
	{ShoeID: "a16eb4e2-127b-4b72-ad93-bd83843f98fe", Brand: "Reebok", Model: "NFX Trainers", Price: "54.99", Image: "reebok_nfx_trainers.png"},
	{ShoeID: "cc8887a4-752f-4b6d-be70-c4d76d1c096a", Brand: "Superga", Model: "2750 OTU CLASSIC", Price: "51.99", Image: "superga_2750_cotu_classic.jpg"},
	{ShoeID: "15ba63ce-eb1b-41fe-ab91-69d11806b932", Brand: "Nike", Model: "Metcon 9", Price: "72.99", Image: "nike_metcon_9.png"},
	{ShoeID: "2c5d51d8-628f-40c5-abb7-c0de9eb49f58", Brand: "On Running", Model: "Cloud 5 Waterproof", Price: "169.99", Image: "on_running_cloud_5_waterproof.png"},
	{ShoeID: "dbbbcede-f50f-4712-8248-86220df6c63f", Brand: "Adidas", Model: "Originals Stan Smith Recon Leather Sneakers", Price: "84.99", Image: "adidas_originals_stan_smith_recon_leather_sneakers.png"},
	{ShoeID: "b7d5ae03-8037-432b-a03e-feee491711c3", Brand: "Nike", Model: "Ai Max 95", Price: "174.99", Image: "nike_air_max_95.png"},
	{ShoeID: "c1d84e20-4375-4517-92d6-255edd51c535", Brand: "Fushiton", Model: "Running Shoes", Price: "30.99", Image: "fushiton_running_shoes.png"},
	{ShoeID: "abed3e2c-0ffb-4951-b1a6-8d6923b55099", Brand: "Vans", Model: "Old Skool Overt CC Shoes", Price: "39.99", Image: "vans_old_skool_overt_cc_shoes.jpg"},
	{ShoeID: "56825d15-90da-4dba-ba61-e577128ef711", Brand: "ASICS", Model: "GEL KAYANO 29", Price: "84.99", Image: "asics_gel_kayano_29.png"},
	{ShoeID: "04c15451-fdfe-441e-bf62-20d36a561050", Brand: "Axel", Model: "Arigato Clean 90", Price: "209.99", Image: "axel_arigato_clean_90.jpg"},
	{ShoeID: "39113d17-4ca6-4e87-9a0f-67ca5732eec9", Brand: "Balenciaga", Model: "Triple Slow-top sneakers", Price: "517.99", Image: "balenciaga_triple_s_low_top_sneakers.png"},
	{ShoeID: "24622548-f2e1-4dda-9918-b0b85349bfbd", Brand: "Converse", Model: "Chuck Taylor All Star Classic", Price: "41.99", Image: "converse_chuck_taylor_all_star_classic.png"},
	{ShoeID: "ee9f0fcb-ce47-462e-88dd-e53398762d23", Brand: "Veja", Model: "Esplar Rubber-Trimmed Leather Sneakers", Price: "119.99", Image: "veja_esplar_rubber_trimmed_leather_sneakers.png"},
	{ShoeID: "f8bf5aa0-e75d-421f-a442-ba503354afff", Brand: "Gucci", Model: "Ace Embroidered Sneaker", Price: "589.99", Image: "gucci_ace_embroidered_sneaker.png"},
	{ShoeID: "5bd7490e-5f22-41d3-8bc7-f927efdd1f74", Brand: "Gola", Model: "Harrier Suede Lace Up Trainers", Price: "68.99", Image: "gola_harrier_suede_lace_up_trainers.png"},
	{ShoeID: "73321c5c-2834-4aa3-9120-990f4027dbdb", Brand: "H&M", Model: "White Trainers", Price: "15.99", Image: "hm_white_trainers.png"},
	{ShoeID: "f40b0f3a-bd88-43cc-903f-957e28af64c8", Brand: "Adidas", Model: "Gazelle Shoes", Price: "84.99", Image: "adidas_gazelle_shoes.jpg"},
	{ShoeID: "9da10989-9cbb-4cd4-a21b-e2dd7c7722b5", Brand: "Nike", Model: "Air Jordan 1 Mid SE", Price: "83.99", Image: "nike_air_jordan_1_mid_se.jpg"},
	{ShoeID: "6f950851-e4a8-4973-8bd1-245418dde82f", Brand: "Acne Studios", Model: "ACNE STUDIOS", Price: "389.99", Image: "acne_studios_acne_studios.png"},
	{ShoeID: "26a9a917-969d-4327-9289-bb6a149cfdd7", Brand: "New Balance", Model: "New Balance bb550", Price: "79.99", Image: "new_balance_new_balance_bb550.jpg"},
}

func availableSizes() []string {
	return []string{"38", "40", "42", "44", "46"}
}

// Shoes returns a fresh copy of the catalog.
func Shoes() []model.Shoe {
	shoes := make([]model.Shoe, 0, len(catalog))
	for _, r := range catalog {
		shoes = append(shoes, model.Shoe{
			ShoeID:         r.ShoeID,
			Brand:          r.Brand,
			Model:          r.Model,
			AvailableSizes: availableSizes(),
			Price:          model.MustPrice(r.Price),
			Image:          r.Image,
		})
	}
	return shoes
}

// Orders returns a fresh copy of the sample orders.
func Orders() []model.Order {
	return []model.Order{
		{
			OrderID: "89d7ab43-f11c-4f08-a25f-505a82376a2a",
			Customer: model.Customer{
				FullName:            "John Doe",
				EmailAddress:        "john.doe@example.com",
				PhoneNumber:         "123-456-7890",
				StreetAddress:       "123 Main St",
				CityTown:            "Anytown",
				StateProvinceRegion: "CA",
				PostCode:            "12345",
				Country:             "United States",
			},
			Lines: []model.OrderLine{
				{Size: 40, ShoeID: "ad8bd387-511e-44b4-8c2f-c1902bc8b764"},
				{Size: 42, ShoeID: "923e0c42-c180-4fc0-9796-bcd4902ffdfe"},
			},
		},
	}
}
