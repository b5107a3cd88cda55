package seeds

// Catalog data as captured on the hotel floor. Names are the canonical
// lookup keys, accents and all.

var wasteCategories = []string{
	"Orgánicos",
	"Orgánicos (naranja/limón)",
	"Inorgánicos - no valorizables",
	"Pet",
	"Plástico duro",
	"Emplaye",
	"BOPP (envolturas)",
	"Vidrio",
	"Aluminio",
	"Cartón",
	"Papel, libros, revistas y periódicos",
	"Lata de conserva o latón",
	"Tetrapak",
	"Textiles",
	"Chatarra",
	"Café para composta",
	"Residuos para rancho",
}

var locations = []string{
	"NA (No aplica)",
	"Áreas públicas",
	"Albercas",
	"Almacén",
	"Ama de llaves",
	"Audio visual",
	"Banquetes",
	"Barefoot",
	"Bares",
	"Barracuda",
	"Bodas",
	"Bordeaux",
	"Carpintería",
	"Club Preferred",
	"Cocina central",
	"Coco Café",
	"Comedor empleados",
	"Comisariato",
	"Edificios",
	"El Patio",
	"Entretenimiento",
	"Especialidades",
	"Eventos/Banquetes",
	"Himitsu",
	"Jardinería",
	"Lavandería",
	"Limpieza de playa",
	"Manatees",
	"Mantenimiento",
	"Market",
	"Market Café",
	"Minibares/Servibar",
	"Oceana",
	"Oficinas",
	"Poblado",
	"Portofino",
	"Proveedores",
	"RH",
	"Room Service/IRD",
	"Seaside",
	"Seaside Grill",
	"Seguridad",
	"Sommelier",
	"Spa",
	"Steward",
	"Tiendas",
	"Tiendita colegas",
	"UVC",
	"Chatos",
}
