package catalog

import "github.com/LavenderBridge/verdure/internal/models"

// basePlants is the build-time dataset. Never mutated; Merge works on copies.
var basePlants = []models.Plant{
	{
		ID:             "monstera",
		CommonName:     "Swiss Cheese Plant",
		ScientificName: "Monstera deliciosa",
		Light:          models.PartialShade,
		Category:       "Foliage",
		Trivia:         "The holes in its leaves are called fenestrations and help it withstand heavy rain and wind.",
		Image:          "https://upload.wikimedia.org/wikipedia/commons/f/f4/Monstera_deliciosa3.jpg",
	},
	{
		ID:             "snake-plant",
		CommonName:     "Snake Plant",
		ScientificName: "Dracaena trifasciata",
		Light:          models.Shade,
		Category:       "Succulent",
		Trivia:         "One of the few plants that releases oxygen at night, which made it a popular bedroom plant.",
		Image:          "https://upload.wikimedia.org/wikipedia/commons/a/a0/Snake_Plant_%28Sansevieria_trifasciata_%27Laurentii%27%29.jpg",
	},
	{
		ID:             "pothos",
		CommonName:     "Golden Pothos",
		ScientificName: "Epipremnum aureum",
		Light:          models.PartialShade,
		Category:       "Vine",
		Trivia:         "Nicknamed devil's ivy because it stays green even when kept in near darkness.",
		Image:          "https://upload.wikimedia.org/wikipedia/commons/3/3a/Epipremnum_aureum_31082012.jpg",
	},
	{
		ID:             "fiddle-leaf-fig",
		CommonName:     "Fiddle-Leaf Fig",
		ScientificName: "Ficus lyrata",
		Light:          models.FullSun,
		Category:       "Tree",
		Trivia:         "In its native West African rainforest it starts life high in another tree's crown as an epiphyte.",
		Image:          "https://upload.wikimedia.org/wikipedia/commons/8/8e/Ficus_lyrata_1.jpg",
	},
	{
		ID:             "peace-lily",
		CommonName:     "Peace Lily",
		ScientificName: "Spathiphyllum wallisii",
		Light:          models.Shade,
		Category:       "Flowering",
		Trivia:         "The white 'petal' is actually a modified leaf called a spathe that shelters the true flower spike.",
		Image:          "https://upload.wikimedia.org/wikipedia/commons/b/bd/Spathiphyllum_cochlearispathum_RTBG.jpg",
	},
	{
		ID:             "aloe-vera",
		CommonName:     "Aloe Vera",
		ScientificName: "Aloe barbadensis",
		Light:          models.FullSun,
		Category:       "Succulent",
		Trivia:         "Cultivated for so long that no truly wild populations are known with certainty.",
		Image:          "https://upload.wikimedia.org/wikipedia/commons/4/4b/Aloe_vera_flower_inset.png",
	},
	{
		ID:             "spider-plant",
		CommonName:     "Spider Plant",
		ScientificName: "Chlorophytum comosum",
		Light:          models.PartialShade,
		Category:       "Foliage",
		Trivia:         "Its dangling plantlets are complete clones that root wherever they touch soil.",
		Image:          "https://upload.wikimedia.org/wikipedia/commons/9/9d/Hierbabuena_0611_Revised.jpg",
	},
	{
		ID:             "rubber-plant",
		CommonName:     "Rubber Plant",
		ScientificName: "Ficus elastica",
		Light:          models.FullSun,
		Category:       "Tree",
		Trivia:         "Living root bridges in India are grown by guiding its aerial roots across rivers for decades.",
		Image:          "https://upload.wikimedia.org/wikipedia/commons/6/6d/Ficus_elastica_leaves.jpg",
	},
	{
		ID:             "zz-plant",
		CommonName:     "ZZ Plant",
		ScientificName: "Zamioculcas zamiifolia",
		Light:          models.Shade,
		Category:       "Foliage",
		Trivia:         "Survives months without water thanks to potato-like rhizomes hidden under the soil.",
		Image:          "https://upload.wikimedia.org/wikipedia/commons/5/55/Zamioculcas_zamiifolia_1.jpg",
	},
	{
		ID:             "english-ivy",
		CommonName:     "English Ivy",
		ScientificName: "Hedera helix",
		Light:          models.PartialShade,
		Category:       "Vine",
		Trivia:         "Juvenile and adult shoots look so different they were once classified as separate species.",
		Image:          "https://upload.wikimedia.org/wikipedia/commons/1/17/Hedera_helix_leaves.jpg",
	},
	{
		ID:             "lavender",
		CommonName:     "Lavender",
		ScientificName: "Lavandula angustifolia",
		Light:          models.FullSun,
		Category:       "Herb",
		Trivia:         "The name comes from the Latin lavare, to wash; Romans scented their baths with it.",
		Image:          "https://upload.wikimedia.org/wikipedia/commons/2/2c/Single_lavendar_flower02.jpg",
	},
	{
		ID:             "boston-fern",
		CommonName:     "Boston Fern",
		ScientificName: "Nephrolepis exaltata",
		Light:          models.Shade,
		Category:       "Fern",
		Trivia:         "The frilly 'Bostoniensis' cultivar was a chance mutation spotted in an 1894 shipment to Boston.",
		Image:          "https://upload.wikimedia.org/wikipedia/commons/2/22/Nephrolepis_exaltata.jpg",
	},
}
