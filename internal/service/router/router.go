package router

import (
	auth "cybertaxi/internal/auth/controller"
	garages "cybertaxi/internal/garages/controller"
	health "cybertaxi/internal/health/controller"
	player "cybertaxi/internal/player/controller"
	tiles "cybertaxi/internal/tiles/controller"
	vehicles "cybertaxi/internal/vehicles/controller"

	"github.com/gorilla/mux"
)

func SetUpRoutes(
	authHandler *auth.AuthHandler,
	playerHandler *player.PlayerHandler,
	vehiclesHandler *vehicles.VehiclesHandler,
	garagesHandler *garages.GaragesHandler,
	tilesHandler *tiles.TilesHandler,
	healthHandler *health.HealthHandler,
) *mux.Router {
	router := mux.NewRouter()
	api := "/api"

	router.HandleFunc(api+"/auth/signup", authHandler.Signup).Methods("POST")
	router.HandleFunc(api+"/auth/login", authHandler.Login).Methods("POST")
	router.HandleFunc(api+"/auth/login/username", authHandler.LoginByUsername).Methods("POST")
	router.HandleFunc(api+"/auth/reset-password", authHandler.ResetPassword).Methods("POST")
	router.HandleFunc(api+"/auth/refresh", authHandler.Refresh).Methods("POST")

	// The /vehicles/others route must register before the numeric form so
	// "others" is never parsed as a player_id.
	router.HandleFunc(api+"/vehicles/others", vehiclesHandler.GetOtherVehicles).Methods("GET")
	router.HandleFunc(api+"/vehicles/{player_id:[0-9]+}", vehiclesHandler.GetPlayerVehicles).Methods("GET")
	router.HandleFunc(api+"/vehicles", vehiclesHandler.PurchaseVehicle).Methods("POST")
	router.HandleFunc(api+"/vehicles/{vehicle_id}/status", vehiclesHandler.SetVehicleStatus).Methods("PATCH")
	router.HandleFunc(api+"/vehicles/{vehicle_id}/delivered", vehiclesHandler.MarkDelivered).Methods("POST")

	router.HandleFunc(api+"/garages/{player_id:[0-9]+}", garagesHandler.GetPlayerGarages).Methods("GET")
	router.HandleFunc(api+"/garages", garagesHandler.PurchaseGarage).Methods("POST")

	router.HandleFunc(api+"/player/{player_id:[0-9]+}", playerHandler.GetPlayer).Methods("GET")
	router.HandleFunc(api+"/player/{username}/balance", playerHandler.GetBalance).Methods("GET")
	router.HandleFunc(api+"/player/{username}/slots", playerHandler.GetSlots).Methods("GET")
	router.HandleFunc(api+"/player/{username}/vehicles", playerHandler.GetVehicles).Methods("GET")
	router.HandleFunc(api+"/player/{username}/garages", playerHandler.GetGarages).Methods("GET")

	router.HandleFunc(api+"/health", healthHandler.Health).Methods("GET")
	router.HandleFunc(api+"/db-status", healthHandler.DbStatus).Methods("GET")
	router.HandleFunc(api+"/system-health", healthHandler.SystemHealth).Methods("GET")

	router.HandleFunc("/tiles/{style}/{z}/{x}/{y}.{format}", tilesHandler.GetTile).Methods("GET")
	router.HandleFunc("/fonts/{fontstack}/{range}.pbf", tilesHandler.GetFont).Methods("GET")

	return router
}
