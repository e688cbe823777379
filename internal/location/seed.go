package location

import "github.com/ugaemi/geonerd-server/internal/game"

// Seed is the built-in catalog served when no external source is available.
var Seed = []game.Location{
	{
		ID: 1, Name: "Chefchaouen Blue Streets", Category: "Cultural", Subcategory: "General",
		Country: "Morocco", City: "Chefchaouen", Continent: "Africa", Climate: "Mediterranean",
		Latitude: 35.1686, Longitude: -5.2636, Difficulty: "Medium",
		Description: "A mountain town painted almost entirely blue, hidden in Morocco's Rif mountains.",
		WikipediaLink: "https://en.wikipedia.org/wiki/Chefchaouen",
		ImageURL: "https://images.unsplash.com/photo-1587974928442-77dc3e0dba72?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
	},
	{
		ID: 2, Name: "Hallstatt Village", Category: "Town", Subcategory: "Street Scenes",
		Country: "Austria", City: "Hallstatt", Continent: "Europe", Climate: "Alpine",
		Latitude: 47.5613, Longitude: 13.6481, Difficulty: "Easy",
		Description: "A fairytale lakeside town in the Austrian Alps with wooden houses and mountain views.",
		WikipediaLink: "https://en.wikipedia.org/wiki/Hallstatt",
		ImageURL: "https://images.unsplash.com/photo-1527838832700-5059252407fa?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1000&q=80",
	},
	{
		ID: 3, Name: "Salar de Uyuni", Category: "Natural", Subcategory: "General",
		Country: "Bolivia", City: "Uyuni", Continent: "South America", Climate: "Desert",
		Latitude: -20.1338, Longitude: -67.4891, Difficulty: "Medium",
		Description: "The world's largest salt flat, becomes a giant mirror after rain.",
		WikipediaLink: "https://en.wikipedia.org/wiki/Salar_de_Uyuni",
		ImageURL: "https://images.unsplash.com/photo-1544735716-392fe2489ffa?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1000&q=80",
	},
	{
		ID: 4, Name: "Meteora Monasteries", Category: "Historic", Subcategory: "Monuments",
		Country: "Greece", City: "Thessaly", Continent: "Europe", Climate: "Mediterranean",
		Latitude: 39.721, Longitude: 21.6306, Difficulty: "Medium",
		Description: "Monasteries perched atop towering rock pillars in central Greece.",
		WikipediaLink: "https://en.wikipedia.org/wiki/Meteora",
		ImageURL: "https://images.unsplash.com/photo-1555993539-1732b0258235?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1000&q=80",
		HistoricalSignificance: "Eastern Orthodox monasteries built on sandstone pillars from the 14th century onward.",
	},
	{
		ID: 5, Name: "Shirakawa-go", Category: "Cultural", Subcategory: "General",
		Country: "Japan", City: "Gifu", Continent: "Asia", Climate: "Temperate",
		Latitude: 36.2596, Longitude: 136.8986, Difficulty: "Medium",
		Description: "A UNESCO-listed village with steep thatched farmhouses in Japanese mountains.",
		WikipediaLink: "https://en.wikipedia.org/wiki/Shirakawa-go",
		ImageURL: "https://images.unsplash.com/photo-1493976040374-85c8e12f0c0e?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1000&q=80",
	},
	{
		ID: 6, Name: "Colmar Old Town", Category: "Town", Subcategory: "Street Scenes",
		Country: "France", City: "Colmar", Continent: "Europe", Climate: "Temperate",
		Latitude: 48.079, Longitude: 7.3585, Difficulty: "Easy",
		Description: "Colorful timber-framed houses and canals in Alsace, France.",
		WikipediaLink: "https://en.wikipedia.org/wiki/Colmar",
		ImageURL: "https://images.unsplash.com/photo-1564594985645-4427056e22e2?auto=format&fit=crop&w=1000&q=80",
	},
	{
		ID: 7, Name: "Cappadocia Fairy Chimneys", Category: "Natural", Subcategory: "General",
		Country: "Turkey", City: "Göreme", Continent: "Asia", Climate: "Continental",
		Latitude: 38.6431, Longitude: 34.8278, Difficulty: "Medium",
		Description: "Strange rock formations and cave dwellings famous for hot air balloons.",
		WikipediaLink: "https://en.wikipedia.org/wiki/Cappadocia",
		ImageURL: "https://images.unsplash.com/photo-1506197603052-3cc9c3a201bd?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1000&q=80",
	},
	{
		ID: 8, Name: "Plitvice Lakes", Category: "Natural", Subcategory: "General",
		Country: "Croatia", City: "Lika-Senj", Continent: "Europe", Climate: "Temperate",
		Latitude: 44.88, Longitude: 15.6167, Difficulty: "Easy",
		Description: "Terraced lakes and waterfalls with turquoise waters in Croatia.",
		WikipediaLink: "https://en.wikipedia.org/wiki/Plitvice_Lakes_National_Park",
		ImageURL: "https://images.unsplash.com/photo-1508804185872-d7badad00f7d?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1000&q=80",
	},
	{
		ID: 9, Name: "Banaue Rice Terraces", Category: "Cultural", Subcategory: "General",
		Country: "Philippines", City: "Banaue", Continent: "Asia", Climate: "Tropical",
		Latitude: 16.9135, Longitude: 121.0583, Difficulty: "Medium",
		Description: "Ancient rice terraces carved into the mountains by the Ifugao people.",
		WikipediaLink: "https://en.wikipedia.org/wiki/Banaue_Rice_Terraces",
		ImageURL: "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1000&q=80",
	},
	{
		ID: 10, Name: "Pamukkale Terraces", Category: "Natural", Subcategory: "General",
		Country: "Turkey", City: "Denizli", Continent: "Asia", Climate: "Mediterranean",
		Latitude: 37.9244, Longitude: 29.1202, Difficulty: "Easy",
		Description: "White travertine terraces formed by hot springs, also known as a Cotton Castle.",
		WikipediaLink: "https://en.wikipedia.org/wiki/Pamukkale",
		ImageURL: "https://images.unsplash.com/photo-1541432901042-2d8bd64b4a9b?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1000&q=80",
	},
	{
		ID: 11, Name: "Chefchaouen Rif Mountains", Category: "Natural", Subcategory: "General",
		Country: "Morocco", City: "Chefchaouen", Continent: "Africa", Climate: "Mediterranean",
		Latitude: 35.17, Longitude: -5.26, Difficulty: "Medium",
		Description: "The Rif mountain backdrop behind Morocco's blue pearl town.",
		WikipediaLink: "https://en.wikipedia.org/wiki/Rif",
		ImageURL: "https://images.unsplash.com/photo-1539650116574-75c0c6d0cd3d?w=800&q=80",
	},
	{
		ID: 12, Name: "CERN Large Hadron Collider", Category: "Science & Technology", Subcategory: "Landmarks",
		Country: "Switzerland", City: "Geneva", Continent: "Europe", Climate: "Temperate",
		Latitude: 46.233, Longitude: 6.05, Difficulty: "Hard",
		Description: "World's largest particle physics laboratory, home to the LHC.",
		WikipediaLink: "https://en.wikipedia.org/wiki/CERN",
		ImageURL: "https://images.unsplash.com/photo-1614728894747-a83421e2b9c9?w=800&q=80",
	},
	{
		ID: 13, Name: "Mauna Kea Observatories", Category: "Science & Technology", Subcategory: "General",
		Country: "USA", City: "Hawaii", Continent: "North America", Climate: "Tropical",
		Latitude: 19.8206, Longitude: -155.4681, Difficulty: "Hard",
		Description: "Cluster of world-class observatories atop a dormant volcano.",
		WikipediaLink: "https://en.wikipedia.org/wiki/Mauna_Kea_Observatories",
		ImageURL: "https://images.unsplash.com/photo-1502134249126-9f3755a50d78?w=800&q=80",
	},
	{
		ID: 14, Name: "Baikonur Cosmodrome", Category: "Science & Technology", Subcategory: "General",
		Country: "Kazakhstan", City: "Baikonur", Continent: "Asia", Climate: "Continental",
		Latitude: 45.9647, Longitude: 63.305, Difficulty: "Hard",
		Description: "Historic spaceport, first site to launch humans into space.",
		WikipediaLink: "https://en.wikipedia.org/wiki/Baikonur_Cosmodrome",
		ImageURL: "https://images.unsplash.com/photo-1446776877081-d282a0f896e2?w=800&q=80",
		HistoricalSignificance: "Launch site of Sputnik 1 in 1957 and of Yuri Gagarin, the first human in space, in 1961.",
	},
	{
		ID: 15, Name: "SKA Observatory (South Africa)", Category: "Science & Technology", Subcategory: "General",
		Country: "South Africa", City: "Northern Cape", Continent: "Africa", Climate: "Desert",
		Latitude: -30.7211, Longitude: 21.4106, Difficulty: "Hard",
		Description: "Part of the Square Kilometre Array, world's largest radio telescope project.",
		WikipediaLink: "https://en.wikipedia.org/wiki/Square_Kilometre_Array",
		ImageURL: "https://images.unsplash.com/photo-1502134249126-9f3755a50d78?w=800&q=80",
	},
	{
		ID: 16, Name: "Arecibo Observatory Ruins", Category: "Science & Technology", Subcategory: "General",
		Country: "Puerto Rico", City: "Arecibo", Continent: "North America", Climate: "Tropical",
		Latitude: 18.3442, Longitude: -66.7528, Difficulty: "Hard",
		Description: "Collapsed in 2020, once the world's largest radio telescope.",
		WikipediaLink: "https://en.wikipedia.org/wiki/Arecibo_Observatory",
		ImageURL: "https://images.unsplash.com/photo-1614728894747-a83421e2b9c9?w=800&q=80",
		HistoricalSignificance: "Radio telescope that sent the Arecibo message in 1974 and collapsed in 2020.",
	},
	{
		ID: 17, Name: "Millau Viaduct", Category: "Architecture & Engineering", Subcategory: "Landmarks",
		Country: "France", City: "Millau", Continent: "Europe", Climate: "Mediterranean",
		Latitude: 44.0692, Longitude: 3.0228, Difficulty: "Medium",
		Description: "Tallest bridge in the world spanning the Tarn Valley.",
		WikipediaLink: "https://en.wikipedia.org/wiki/Millau_Viaduct",
		ImageURL: "https://images.unsplash.com/photo-1558618666-fbd31c0c8e32?w=800&q=80",
	},
	{
		ID: 18, Name: "Lotus Temple", Category: "Architecture & Engineering", Subcategory: "Landmarks",
		Country: "India", City: "Delhi", Continent: "Asia", Climate: "Continental",
		Latitude: 28.5535, Longitude: 77.2588, Difficulty: "Medium",
		Description: "Bahai House of Worship shaped like a blooming lotus flower.",
		WikipediaLink: "https://en.wikipedia.org/wiki/Lotus_Temple",
		ImageURL: "https://images.unsplash.com/photo-1524492412937-b28074a5d7da?w=800&q=80",
	},
	{
		ID: 19, Name: "Turning Torso", Category: "Architecture & Engineering", Subcategory: "Landmarks",
		Country: "Sweden", City: "Malmö", Continent: "Europe", Climate: "Temperate",
		Latitude: 55.6133, Longitude: 12.9769, Difficulty: "Medium",
		Description: "Famous twisting skyscraper by Santiago Calatrava.",
		WikipediaLink: "https://en.wikipedia.org/wiki/Turning_Torso",
		ImageURL: "https://images.unsplash.com/photo-1558618666-fbd31c0c8e32?w=800&q=80",
	},
	{
		ID: 20, Name: "Hagia Sophia", Category: "Architecture & Engineering", Subcategory: "Landmarks",
		Country: "Turkey", City: "Istanbul", Continent: "Europe", Climate: "Mediterranean",
		Latitude: 41.0086, Longitude: 28.9802, Difficulty: "Easy",
		Description: "Architectural marvel blending Byzantine and Ottoman design.",
		WikipediaLink: "https://en.wikipedia.org/wiki/Hagia_Sophia",
		ImageURL: "https://images.unsplash.com/photo-1524231757912-21f4fe3a7200?w=800&q=80",
		HistoricalSignificance: "Built as the cathedral of Constantinople in 537, later a mosque, museum and mosque again.",
	},
}
