package attr

// Cross-domain signal words. Detectors use them as exclusion sets so that a
// query naming another domain's product is not claimed.
var (
	PhoneSignals    = NewSet("celular", "celulares", "celu", "telefono", "telefonos", "smartphone", "smartphones")
	NotebookSignals = NewSet("notebook", "notebooks", "laptop", "laptops", "ultrabook", "ram", "ssd", "hdd", "ryzen", "intel", "i3", "i5", "i7", "i9")
	TVSignals       = NewSet("tv", "tele", "televisor", "televisores", "pulgadas", "4k", "uhd", "oled", "qled", "led", "hdr")
	VehicleSignals  = NewSet("auto", "autos", "moto", "motos", "camioneta", "camionetas", "pickup", "pickups", "vehiculo", "vehiculos", "0km")
	HeadphoneWords  = NewSet("auricular", "auriculares", "headphone", "headphones", "headset", "headsets", "earbuds", "earbud", "buds", "auris", "inear", "airpods", "vincha")
	TabletWords     = NewSet("tablet", "tablets", "tableta", "tabletas", "ipad")
	WatchWords      = NewSet("smartwatch", "smartwatches", "reloj", "relojes", "smartband")
	PetWords        = NewSet("perro", "perros", "gato", "gatos", "mascota", "mascotas", "cucha", "alimento")
)

// VehicleBrands are car, motorcycle and pickup makers and models that make a
// query about vehicles even without a vehicle noun.
var VehicleBrands = NewSet(
	"toyota", "ford", "chevrolet", "fiat", "renault", "volkswagen", "vw", "peugeot", "citroen",
	"honda", "nissan", "bmw", "audi", "mercedes", "jeep", "kia", "hyundai", "yamaha", "suzuki",
	"kawasaki", "motomel", "zanella", "corven", "gilera", "bajaj", "ktm", "benelli", "keller",
	"hilux", "ranger", "amarok", "s10", "frontier", "toro",
)
