package myths

// records is the embedded reference dataset. It is read-only: every public
// entry point hands out copies, never slices of this table.
var records = []Record{
	{
		ID:       "nutrition-eggs",
		Category: CategoryNutrition,
		Region:   RegionEastAfrica,
		Myth:     "Eating eggs during pregnancy makes the baby bald or causes a difficult delivery.",
		Fact:     "Eggs are a safe, affordable source of protein, choline and iron. Fully cooked eggs are encouraged throughout pregnancy.",
		Keywords: []string{"eggs", "protein", "bald", "delivery"},
	},
	{
		ID:       "nutrition-cold-food",
		Category: CategoryNutrition,
		Region:   RegionSouthAsia,
		Myth:     "Cold foods such as curd or citrus must be avoided because they chill the womb.",
		Fact:     "Food temperature and 'hot/cold' food categories do not affect the uterus. Curd and citrus fruit are nutritious and safe.",
		Keywords: []string{"cold", "curd", "citrus", "fruit", "womb"},
	},
	{
		ID:       "nutrition-eating-for-two",
		Category: CategoryNutrition,
		Region:   RegionGlobal,
		Myth:     "A pregnant woman must eat twice as much because she is eating for two.",
		Fact:     "Energy needs rise only modestly, roughly an extra 300 kcal per day in later trimesters. Quality matters more than quantity.",
		Keywords: []string{"eating", "two", "double", "portion", "calories"},
	},
	{
		ID:       "activity-lifting-cord",
		Category: CategoryActivity,
		Region:   RegionGlobal,
		Myth:     "Raising your arms above your head wraps the umbilical cord around the baby's neck.",
		Fact:     "Arm position has no connection to the umbilical cord. Nuchal cords occur from fetal movement and are usually harmless.",
		Keywords: []string{"arms", "lifting", "cord", "umbilical", "neck"},
	},
	{
		ID:       "activity-exercise",
		Category: CategoryActivity,
		Region:   RegionGlobal,
		Myth:     "Exercise during pregnancy causes miscarriage and should be avoided.",
		Fact:     "Moderate exercise such as walking or swimming is beneficial in uncomplicated pregnancies and does not cause miscarriage.",
		Keywords: []string{"exercise", "walking", "swimming", "miscarriage", "rest"},
	},
	{
		ID:       "activity-work-bending",
		Category: CategoryActivity,
		Region:   RegionWestAfrica,
		Myth:     "Bending over or farm work will squash the baby.",
		Fact:     "The baby is cushioned by amniotic fluid and the uterine wall. Ordinary bending and routine work do not harm the fetus.",
		Keywords: []string{"bending", "farm", "work", "squash"},
	},
	{
		ID:       "symptoms-heartburn-hair",
		Category: CategorySymptoms,
		Region:   RegionGlobal,
		Myth:     "Bad heartburn means the baby will be born with a full head of hair.",
		Fact:     "Heartburn is caused by hormonal relaxation of the esophageal sphincter and the growing uterus, not by fetal hair.",
		Keywords: []string{"heartburn", "hair", "reflux"},
	},
	{
		ID:       "symptoms-bump-shape",
		Category: CategorySymptoms,
		Region:   RegionGlobal,
		Myth:     "Carrying high means a girl and carrying low means a boy.",
		Fact:     "Bump shape reflects muscle tone, fetal position and body build. Only ultrasound or genetic testing indicates fetal sex.",
		Keywords: []string{"bump", "shape", "high", "low", "girl", "boy", "gender"},
	},
	{
		ID:       "symptoms-cravings",
		Category: CategorySymptoms,
		Region:   RegionEastAfrica,
		Myth:     "Craving soil or clay is the baby demanding minerals and should be satisfied.",
		Fact:     "Soil cravings (pica) often signal iron deficiency. Eating soil risks parasites and toxins; an iron test is the right response.",
		Keywords: []string{"craving", "soil", "clay", "pica", "iron"},
	},
	{
		ID:       "traditional-labor-secrecy",
		Category: CategoryTraditional,
		Region:   RegionWestAfrica,
		Myth:     "Announcing a pregnancy early invites evil eyes and causes loss of the baby.",
		Fact:     "Early antenatal booking saves lives. Sharing the pregnancy with a health worker in the first trimester improves outcomes.",
		Keywords: []string{"secrecy", "announce", "evil", "early", "antenatal"},
	},
	{
		ID:       "traditional-herbs",
		Category: CategoryTraditional,
		Region:   RegionEastAfrica,
		Myth:     "Traditional herbs strengthen the womb and make labor faster.",
		Fact:     "Some herbal preparations stimulate the uterus dangerously or damage the liver. Discuss any remedy with a health worker first.",
		Keywords: []string{"herbs", "herbal", "remedy", "labor", "womb"},
	},
	{
		ID:       "traditional-eclipse",
		Category: CategoryTraditional,
		Region:   RegionSouthAsia,
		Myth:     "Going outside during an eclipse causes cleft lip or birthmarks.",
		Fact:     "Eclipses have no effect on fetal development. Cleft lip arises from genetic and nutritional factors such as folate deficiency.",
		Keywords: []string{"eclipse", "cleft", "birthmark", "moon"},
	},
	{
		ID:       "general-ultrasound-harm",
		Category: CategoryGeneral,
		Region:   RegionGlobal,
		Myth:     "Ultrasound scans harm the baby and should be refused.",
		Fact:     "Diagnostic obstetric ultrasound uses sound waves, not radiation, and decades of use show no harm at diagnostic intensities.",
		Keywords: []string{"ultrasound", "scan", "radiation", "harm"},
	},
	{
		ID:       "general-sex-pregnancy",
		Category: CategoryGeneral,
		Region:   RegionGlobal,
		Myth:     "Sex during pregnancy hurts the baby.",
		Fact:     "In an uncomplicated pregnancy sex is safe; the baby is protected by the amniotic sac and the cervical mucus plug.",
		Keywords: []string{"sex", "intercourse", "hurt"},
	},
}

// Records returns a copy of the full dataset.
func Records() []Record {
	out := make([]Record, len(records))
	copy(out, records)
	return out
}
