package dataset

import (
	"errors"

	"github.com/nyc-taxis/dashboard/models"
)

// ErrMalformedInput is returned when a dataset is missing required columns
// or properties. Startup must abort when it is returned.
var ErrMalformedInput = errors.New("malformed input data")

// Trip CSV column names (seaborn "taxis" layout)
const (
	ColPickup         = "pickup"
	ColDropoff        = "dropoff"
	ColPassengers     = "passengers"
	ColDistance       = "distance"
	ColFare           = "fare"
	ColTip            = "tip"
	ColTolls          = "tolls"
	ColTotal          = "total"
	ColColor          = "color"
	ColPayment        = "payment"
	ColPickupZone     = "pickup_zone"
	ColDropoffZone    = "dropoff_zone"
	ColPickupBorough  = "pickup_borough"
	ColDropoffBorough = "dropoff_borough"
)

// RequiredTripColumns must be present in the trips CSV header
var RequiredTripColumns = []string{ColPickup, ColPickupBorough, ColFare, ColDistance}

// Boundary GeoJSON feature properties (NYC "nybb" layout)
const (
	PropCode = "BoroCode"
	PropName = "BoroName"
)

// Data is everything the dashboard needs from the dataset loader
type Data struct {
	Trips   models.TripTable
	Regions models.RegionTable
}
