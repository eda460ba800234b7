package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"shoestore_be/config"
	"shoestore_be/controller"
	"shoestore_be/controller/auth"
	"shoestore_be/controller/brand"
	"shoestore_be/controller/category"
	"shoestore_be/controller/dashboard"
	"shoestore_be/controller/image"
	"shoestore_be/controller/orphan"
	"shoestore_be/controller/promocode"
	"shoestore_be/controller/shoe"
	"shoestore_be/controller/transaction"
)

const idPattern = "{id:[0-9a-fA-F-]{36}}"

// Handlers groups the controllers the router dispatches to.
type Handlers struct {
	Auth         *auth.Handler
	Brand        *brand.Handler
	Category     *category.Handler
	Shoe         *shoe.Handler
	PromoCode    *promocode.Handler
	Transaction  *transaction.Handler
	Image        *image.Handler
	Dashboard    *dashboard.Handler
	Orphan       *orphan.Handler
	PublicKey    string
	AllowOrigins []string
}

func InitializeRoutes(h Handlers) http.Handler {
	router := mux.NewRouter()

	// Root route
	router.HandleFunc("/", controller.GetHome).Methods("GET")

	// Auth
	router.HandleFunc("/auth/signin", h.Auth.LoginUsers).Methods("POST")
	router.HandleFunc("/auth/google", h.Auth.LoginWithGoogle).Methods("POST")

	// Upload
	api := router.PathPrefix("/api").Subrouter()
	api.Use(AdminOnly(h.PublicKey))
	api.HandleFunc("/upload", h.Image.AddImage).Methods("POST")
	api.HandleFunc("/upload", h.Image.DeleteImage).Methods("DELETE")

	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(AdminOnly(h.PublicKey))

	admin.HandleFunc("/me", h.Auth.GetMe).Methods("GET")
	admin.HandleFunc("/dashboard", h.Dashboard.GetDashboard).Methods("GET")
	admin.HandleFunc("/orphan-images", h.Orphan.GetOrphanImages).Methods("GET")

	// Brand
	admin.HandleFunc("/brands", h.Brand.GetAllBrands).Methods("GET")
	admin.HandleFunc("/brands", h.Brand.CreateBrand).Methods("POST")
	admin.HandleFunc("/brands/options", h.Brand.GetBrandOptions).Methods("GET")
	admin.HandleFunc("/brands/"+idPattern, h.Brand.GetBrandByID).Methods("GET")
	admin.HandleFunc("/brands/"+idPattern, h.Brand.UpdateBrand).Methods("PUT")
	admin.HandleFunc("/brands/"+idPattern, h.Brand.DeleteBrand).Methods("DELETE")

	// Category
	admin.HandleFunc("/categories", h.Category.GetAllCategories).Methods("GET")
	admin.HandleFunc("/categories", h.Category.CreateCategory).Methods("POST")
	admin.HandleFunc("/categories/options", h.Category.GetCategoryOptions).Methods("GET")
	admin.HandleFunc("/categories/"+idPattern, h.Category.GetCategoryByID).Methods("GET")
	admin.HandleFunc("/categories/"+idPattern, h.Category.UpdateCategory).Methods("PUT")
	admin.HandleFunc("/categories/"+idPattern, h.Category.DeleteCategory).Methods("DELETE")

	// Shoe
	admin.HandleFunc("/shoes", h.Shoe.GetAllShoes).Methods("GET")
	admin.HandleFunc("/shoes", h.Shoe.CreateShoe).Methods("POST")
	admin.HandleFunc("/shoes/options", h.Shoe.GetShoeOptions).Methods("GET")
	admin.HandleFunc("/shoes/"+idPattern, h.Shoe.GetShoeByID).Methods("GET")
	admin.HandleFunc("/shoes/"+idPattern, h.Shoe.UpdateShoe).Methods("PUT")
	admin.HandleFunc("/shoes/"+idPattern, h.Shoe.DeleteShoe).Methods("DELETE")

	// Promo code
	admin.HandleFunc("/promo-codes", h.PromoCode.GetAllPromoCodes).Methods("GET")
	admin.HandleFunc("/promo-codes", h.PromoCode.CreatePromoCode).Methods("POST")
	admin.HandleFunc("/promo-codes/options", h.PromoCode.GetPromoCodeOptions).Methods("GET")
	admin.HandleFunc("/promo-codes/"+idPattern, h.PromoCode.GetPromoCodeByID).Methods("GET")
	admin.HandleFunc("/promo-codes/"+idPattern, h.PromoCode.UpdatePromoCode).Methods("PUT")
	admin.HandleFunc("/promo-codes/"+idPattern, h.PromoCode.DeletePromoCode).Methods("DELETE")

	// Transaction
	admin.HandleFunc("/transactions", h.Transaction.GetAllTransactions).Methods("GET")
	admin.HandleFunc("/transactions", h.Transaction.CreateTransaction).Methods("POST")
	admin.HandleFunc("/transactions/quote", h.Transaction.QuoteTransaction).Methods("POST")
	admin.HandleFunc("/transactions/"+idPattern, h.Transaction.GetTransactionByID).Methods("GET")
	admin.HandleFunc("/transactions/"+idPattern, h.Transaction.UpdateTransaction).Methods("PUT")
	admin.HandleFunc("/transactions/"+idPattern, h.Transaction.DeleteTransaction).Methods("DELETE")
	admin.HandleFunc("/transactions/"+idPattern+"/approve", h.Transaction.ApproveTransaction).Methods("PUT")

	return config.CORSMiddleware(h.AllowOrigins)(router)
}
