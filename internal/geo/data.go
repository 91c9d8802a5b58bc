package geo

import "github.com/bd-address-extractor/app/models"

// Seed data for the administrative hierarchy and the gazetteer. The
// gazetteer can be replaced by a corpus file at startup (see
// NewKnowledgeBaseFromFile); the hierarchy always loads from here.

type villageSeed struct {
	name   string
	postal string
}

type unionSeed struct {
	name     string
	postal   string
	villages []villageSeed
}

type upazilaSeed struct {
	name   string
	postal string
	unions []unionSeed
}

type districtSeed struct {
	name     string
	postal   string // district head post office
	upazilas []upazilaSeed
}

// divisionSeeds all eight divisions with their districts. Upazila and lower
// levels are populated where postal inference needs them; the district list
// itself is complete.
var divisionSeeds = map[string][]districtSeed{
	"Dhaka": {
		{name: "Dhaka", postal: "1000", upazilas: []upazilaSeed{
			{name: "Savar", postal: "1340", unions: []unionSeed{
				{name: "Ashulia", postal: "1341", villages: []villageSeed{
					{name: "Baipail", postal: "1341"},
					{name: "Jamgora", postal: "1341"},
				}},
				{name: "Tetuljhora", postal: "1340"},
			}},
			{name: "Dhamrai", postal: "1350"},
			{name: "Keraniganj", postal: "1310", unions: []unionSeed{
				{name: "Zinzira", postal: "1310"},
			}},
			{name: "Nawabganj", postal: "1320"},
			{name: "Dohar", postal: "1330"},
		}},
		{name: "Gazipur", postal: "1700", upazilas: []upazilaSeed{
			{name: "Gazipur Sadar", postal: "1700"},
			{name: "Tongi", postal: "1710"},
			{name: "Kaliakair", postal: "1750"},
			{name: "Kapasia", postal: "1730"},
			{name: "Sreepur", postal: "1740"},
			{name: "Kaliganj", postal: "1720"},
		}},
		{name: "Narayanganj", postal: "1400", upazilas: []upazilaSeed{
			{name: "Narayanganj Sadar", postal: "1400"},
			{name: "Fatullah", postal: "1420"},
			{name: "Siddhirganj", postal: "1430"},
			{name: "Sonargaon", postal: "1440"},
			{name: "Rupganj", postal: "1460"},
			{name: "Araihazar", postal: "1450"},
		}},
		{name: "Narsingdi", postal: "1600"},
		{name: "Munshiganj", postal: "1500"},
		{name: "Manikganj", postal: "1800"},
		{name: "Tangail", postal: "1900"},
		{name: "Kishoreganj", postal: "2300"},
		{name: "Faridpur", postal: "7800"},
		{name: "Gopalganj", postal: "8100"},
		{name: "Madaripur", postal: "7900"},
		{name: "Shariatpur", postal: "8000"},
		{name: "Rajbari", postal: "7700"},
	},
	"Chattogram": {
		{name: "Chattogram", postal: "4000", upazilas: []upazilaSeed{
			{name: "Sitakunda", postal: "4310"},
			{name: "Hathazari", postal: "4330"},
			{name: "Patiya", postal: "4370"},
			{name: "Mirsharai", postal: "4320"},
			{name: "Rangunia", postal: "4360"},
			{name: "Anwara", postal: "4376"},
		}},
		{name: "CoxsBazar", postal: "4700"},
		{name: "Comilla", postal: "3500"},
		{name: "Feni", postal: "3900"},
		{name: "Noakhali", postal: "3800"},
		{name: "Lakshmipur", postal: "3700"},
		{name: "Chandpur", postal: "3600"},
		{name: "Brahmanbaria", postal: "3400"},
		{name: "Rangamati", postal: "4500"},
		{name: "Khagrachari", postal: "4400"},
		{name: "Bandarban", postal: "4600"},
	},
	"Sylhet": {
		{name: "Sylhet", postal: "3100", upazilas: []upazilaSeed{
			{name: "Sylhet Sadar", postal: "3100"},
			{name: "Osmani Nagar", postal: "3121"},
			{name: "Beanibazar", postal: "3170"},
		}},
		{name: "Moulvibazar", postal: "3200"},
		{name: "Habiganj", postal: "3300"},
		{name: "Sunamganj", postal: "3000"},
	},
	"Rajshahi": {
		{name: "Rajshahi", postal: "6000", upazilas: []upazilaSeed{
			{name: "Rajshahi Sadar", postal: "6000"},
			{name: "Katakhali", postal: "6212"},
		}},
		{name: "Bogra", postal: "5800"},
		{name: "Pabna", postal: "6600"},
		{name: "Sirajganj", postal: "6700"},
		{name: "Natore", postal: "6400"},
		{name: "Naogaon", postal: "6500"},
		{name: "Joypurhat", postal: "5900"},
		{name: "ChapaiNawabganj", postal: "6300"},
	},
	"Khulna": {
		{name: "Khulna", postal: "9000", upazilas: []upazilaSeed{
			{name: "Daulatpur", postal: "9202"},
			{name: "Phultala", postal: "9210"},
			{name: "Dumuria", postal: "9250"},
		}},
		{name: "Jashore", postal: "7400"},
		{name: "Satkhira", postal: "9400"},
		{name: "Bagerhat", postal: "9300"},
		{name: "Kushtia", postal: "7000"},
		{name: "Jhenaidah", postal: "7300"},
		{name: "Magura", postal: "7600"},
		{name: "Narail", postal: "7500"},
		{name: "Meherpur", postal: "7100"},
		{name: "Chuadanga", postal: "7200"},
	},
	"Barisal": {
		{name: "Barisal", postal: "8200"},
		{name: "Bhola", postal: "8300"},
		{name: "Patuakhali", postal: "8600"},
		{name: "Pirojpur", postal: "8500"},
		{name: "Barguna", postal: "8700"},
		{name: "Jhalokathi", postal: "8400"},
	},
	"Rangpur": {
		{name: "Rangpur", postal: "5400"},
		{name: "Dinajpur", postal: "5200"},
		{name: "Kurigram", postal: "5600"},
		{name: "Gaibandha", postal: "5700"},
		{name: "Lalmonirhat", postal: "5500"},
		{name: "Nilphamari", postal: "5300"},
		{name: "Panchagarh", postal: "5100"},
		{name: "Thakurgaon", postal: "5100"},
	},
	"Mymensingh": {
		{name: "Mymensingh", postal: "2200"},
		{name: "Jamalpur", postal: "2000"},
		{name: "Sherpur", postal: "2100"},
		{name: "Netrokona", postal: "2400"},
	},
}

// gazetteerSeeds default area corpus: the frequent neighborhoods of the
// big cities with their observed postal codes. Frequencies come from the
// address corpus and drive suggestion ranking.
var gazetteerSeeds = []models.GazetteerEntry{
	// Dhaka
	{AreaName: "Mirpur", District: "Dhaka", Division: "Dhaka", PostalCode: "1216", ObservedFrequency: 4210},
	{AreaName: "Mirpur DOHS", District: "Dhaka", Division: "Dhaka", PostalCode: "1216", ObservedFrequency: 380},
	{AreaName: "Pallabi", District: "Dhaka", Division: "Dhaka", PostalCode: "1216", ObservedFrequency: 510},
	{AreaName: "Kazipara", District: "Dhaka", Division: "Dhaka", PostalCode: "1216", ObservedFrequency: 320},
	{AreaName: "Shewrapara", District: "Dhaka", Division: "Dhaka", PostalCode: "1216", ObservedFrequency: 300},
	{AreaName: "Uttara", District: "Dhaka", Division: "Dhaka", PostalCode: "1230", ObservedFrequency: 3150},
	{AreaName: "Uttarkhan", District: "Dhaka", Division: "Dhaka", PostalCode: "1230", ObservedFrequency: 210},
	{AreaName: "Dakshinkhan", District: "Dhaka", Division: "Dhaka", PostalCode: "1230", ObservedFrequency: 190},
	{AreaName: "Gulshan", District: "Dhaka", Division: "Dhaka", PostalCode: "1212", ObservedFrequency: 2980},
	{AreaName: "Banani", District: "Dhaka", Division: "Dhaka", PostalCode: "1213", ObservedFrequency: 2410},
	{AreaName: "Banani DOHS", District: "Dhaka", Division: "Dhaka", PostalCode: "1213", ObservedFrequency: 260},
	{AreaName: "Baridhara", District: "Dhaka", Division: "Dhaka", PostalCode: "1212", ObservedFrequency: 720},
	{AreaName: "Baridhara DOHS", District: "Dhaka", Division: "Dhaka", PostalCode: "1206", ObservedFrequency: 240},
	{AreaName: "Niketon", District: "Dhaka", Division: "Dhaka", PostalCode: "1212", ObservedFrequency: 330},
	{AreaName: "Mohakhali", District: "Dhaka", Division: "Dhaka", PostalCode: "1212", ObservedFrequency: 980},
	{AreaName: "Mohakhali DOHS", District: "Dhaka", Division: "Dhaka", PostalCode: "1206", ObservedFrequency: 210},
	{AreaName: "Badda", District: "Dhaka", Division: "Dhaka", PostalCode: "1212", ObservedFrequency: 1120},
	{AreaName: "Merul Badda", District: "Dhaka", Division: "Dhaka", PostalCode: "1212", ObservedFrequency: 260},
	{AreaName: "Dhanmondi", District: "Dhaka", Division: "Dhaka", PostalCode: "1209", ObservedFrequency: 2660},
	{AreaName: "Kalabagan", District: "Dhaka", Division: "Dhaka", PostalCode: "1205", ObservedFrequency: 410},
	{AreaName: "Lalmatia", District: "Dhaka", Division: "Dhaka", PostalCode: "1207", ObservedFrequency: 520},
	{AreaName: "Mohammadpur", District: "Dhaka", Division: "Dhaka", PostalCode: "1207", ObservedFrequency: 1890},
	{AreaName: "Adabor", District: "Dhaka", Division: "Dhaka", PostalCode: "1207", ObservedFrequency: 360},
	{AreaName: "Shyamoli", District: "Dhaka", Division: "Dhaka", PostalCode: "1207", ObservedFrequency: 640},
	{AreaName: "Agargaon", District: "Dhaka", Division: "Dhaka", PostalCode: "1207", ObservedFrequency: 450},
	{AreaName: "Motijheel", District: "Dhaka", Division: "Dhaka", PostalCode: "1000", ObservedFrequency: 1340},
	{AreaName: "Paltan", District: "Dhaka", Division: "Dhaka", PostalCode: "1000", ObservedFrequency: 620},
	{AreaName: "Ramna", District: "Dhaka", Division: "Dhaka", PostalCode: "1217", ObservedFrequency: 380},
	{AreaName: "Shantinagar", District: "Dhaka", Division: "Dhaka", PostalCode: "1217", ObservedFrequency: 420},
	{AreaName: "Malibagh", District: "Dhaka", Division: "Dhaka", PostalCode: "1217", ObservedFrequency: 560},
	{AreaName: "Moghbazar", District: "Dhaka", Division: "Dhaka", PostalCode: "1217", ObservedFrequency: 610},
	{AreaName: "Rampura", District: "Dhaka", Division: "Dhaka", PostalCode: "1219", ObservedFrequency: 830},
	{AreaName: "Banasree", District: "Dhaka", Division: "Dhaka", PostalCode: "1219", ObservedFrequency: 540},
	{AreaName: "Khilgaon", District: "Dhaka", Division: "Dhaka", PostalCode: "1219", ObservedFrequency: 760},
	{AreaName: "Aftabnagar", District: "Dhaka", Division: "Dhaka", PostalCode: "1212", ObservedFrequency: 290},
	{AreaName: "Bashundhara", District: "Dhaka", Division: "Dhaka", PostalCode: "1229", ObservedFrequency: 1180},
	{AreaName: "Bashundhara Residential Area", District: "Dhaka", Division: "Dhaka", PostalCode: "1229", ObservedFrequency: 470},
	{AreaName: "Khilkhet", District: "Dhaka", Division: "Dhaka", PostalCode: "1229", ObservedFrequency: 410},
	{AreaName: "Nikunja", District: "Dhaka", Division: "Dhaka", PostalCode: "1229", ObservedFrequency: 300},
	{AreaName: "Tejgaon", District: "Dhaka", Division: "Dhaka", PostalCode: "1215", ObservedFrequency: 690},
	{AreaName: "Farmgate", District: "Dhaka", Division: "Dhaka", PostalCode: "1215", ObservedFrequency: 580},
	{AreaName: "Panthapath", District: "Dhaka", Division: "Dhaka", PostalCode: "1205", ObservedFrequency: 340},
	{AreaName: "Green Road", District: "Dhaka", Division: "Dhaka", PostalCode: "1205", ObservedFrequency: 310},
	{AreaName: "Elephant Road", District: "Dhaka", Division: "Dhaka", PostalCode: "1205", ObservedFrequency: 330},
	{AreaName: "New Market", District: "Dhaka", Division: "Dhaka", PostalCode: "1205", ObservedFrequency: 450},
	{AreaName: "Azimpur", District: "Dhaka", Division: "Dhaka", PostalCode: "1205", ObservedFrequency: 360},
	{AreaName: "Lalbagh", District: "Dhaka", Division: "Dhaka", PostalCode: "1211", ObservedFrequency: 430},
	{AreaName: "Hazaribagh", District: "Dhaka", Division: "Dhaka", PostalCode: "1209", ObservedFrequency: 280},
	{AreaName: "Wari", District: "Dhaka", Division: "Dhaka", PostalCode: "1203", ObservedFrequency: 390},
	{AreaName: "Sadarghat", District: "Dhaka", Division: "Dhaka", PostalCode: "1100", ObservedFrequency: 350},
	{AreaName: "Jatrabari", District: "Dhaka", Division: "Dhaka", PostalCode: "1204", ObservedFrequency: 710},
	{AreaName: "Demra", District: "Dhaka", Division: "Dhaka", PostalCode: "1360", ObservedFrequency: 320},
	{AreaName: "Cantonment", District: "Dhaka", Division: "Dhaka", PostalCode: "1206", ObservedFrequency: 440},
	{AreaName: "Kafrul", District: "Dhaka", Division: "Dhaka", PostalCode: "1206", ObservedFrequency: 310},
	{AreaName: "Ibrahimpur", District: "Dhaka", Division: "Dhaka", PostalCode: "1206", ObservedFrequency: 230},
	{AreaName: "Mugdha", District: "Dhaka", Division: "Dhaka", PostalCode: "1214", ObservedFrequency: 260},
	{AreaName: "Jurain", District: "Dhaka", Division: "Dhaka", PostalCode: "1204", ObservedFrequency: 220},
	{AreaName: "Tongi", District: "Gazipur", Division: "Dhaka", PostalCode: "1710", ObservedFrequency: 530},
	{AreaName: "Joydebpur", District: "Gazipur", Division: "Dhaka", PostalCode: "1700", ObservedFrequency: 340},
	{AreaName: "Savar", District: "Dhaka", Division: "Dhaka", PostalCode: "1340", ObservedFrequency: 610},
	{AreaName: "Ashulia", District: "Dhaka", Division: "Dhaka", PostalCode: "1341", ObservedFrequency: 330},
	{AreaName: "Chashara", District: "Narayanganj", Division: "Dhaka", PostalCode: "1400", ObservedFrequency: 280},

	// Chattogram
	{AreaName: "Agrabad", District: "Chattogram", Division: "Chattogram", PostalCode: "4100", ObservedFrequency: 860},
	{AreaName: "Halishahar", District: "Chattogram", Division: "Chattogram", PostalCode: "4216", ObservedFrequency: 540},
	{AreaName: "Nasirabad", District: "Chattogram", Division: "Chattogram", PostalCode: "4000", ObservedFrequency: 470},
	{AreaName: "Khulshi", District: "Chattogram", Division: "Chattogram", PostalCode: "4225", ObservedFrequency: 390},
	{AreaName: "Pahartali", District: "Chattogram", Division: "Chattogram", PostalCode: "4202", ObservedFrequency: 360},
	{AreaName: "Patenga", District: "Chattogram", Division: "Chattogram", PostalCode: "4204", ObservedFrequency: 310},
	{AreaName: "Chawkbazar", District: "Chattogram", Division: "Chattogram", PostalCode: "4203", ObservedFrequency: 330},
	{AreaName: "Panchlaish", District: "Chattogram", Division: "Chattogram", PostalCode: "4203", ObservedFrequency: 300},
	{AreaName: "Muradpur", District: "Chattogram", Division: "Chattogram", PostalCode: "4000", ObservedFrequency: 280},
	{AreaName: "GEC Circle", District: "Chattogram", Division: "Chattogram", PostalCode: "4000", ObservedFrequency: 250},
	{AreaName: "Bayezid", District: "Chattogram", Division: "Chattogram", PostalCode: "4210", ObservedFrequency: 270},
	{AreaName: "Chandgaon", District: "Chattogram", Division: "Chattogram", PostalCode: "4212", ObservedFrequency: 240},
	{AreaName: "Oxygen", District: "Chattogram", Division: "Chattogram", PostalCode: "4213", ObservedFrequency: 200},
	{AreaName: "Lalkhan Bazar", District: "Chattogram", Division: "Chattogram", PostalCode: "4000", ObservedFrequency: 190},

	// Sylhet
	{AreaName: "Zindabazar", District: "Sylhet", Division: "Sylhet", PostalCode: "3100", ObservedFrequency: 320},
	{AreaName: "Amberkhana", District: "Sylhet", Division: "Sylhet", PostalCode: "3100", ObservedFrequency: 280},
	{AreaName: "Uposhahar", District: "Sylhet", Division: "Sylhet", PostalCode: "3100", ObservedFrequency: 230},
	{AreaName: "Mirabazar", District: "Sylhet", Division: "Sylhet", PostalCode: "3100", ObservedFrequency: 190},

	// Rajshahi
	{AreaName: "Shaheb Bazar", District: "Rajshahi", Division: "Rajshahi", PostalCode: "6100", ObservedFrequency: 260},
	{AreaName: "Upashahar", District: "Rajshahi", Division: "Rajshahi", PostalCode: "6202", ObservedFrequency: 200},
	{AreaName: "Kazla", District: "Rajshahi", Division: "Rajshahi", PostalCode: "6204", ObservedFrequency: 170},

	// Khulna
	{AreaName: "Sonadanga", District: "Khulna", Division: "Khulna", PostalCode: "9100", ObservedFrequency: 250},
	{AreaName: "Khalishpur", District: "Khulna", Division: "Khulna", PostalCode: "9000", ObservedFrequency: 220},
	{AreaName: "Boyra", District: "Khulna", Division: "Khulna", PostalCode: "9000", ObservedFrequency: 180},

	// Barisal, Rangpur, Mymensingh
	{AreaName: "Rupatali", District: "Barisal", Division: "Barisal", PostalCode: "8200", ObservedFrequency: 150},
	{AreaName: "Jahaj Company Mor", District: "Rangpur", Division: "Rangpur", PostalCode: "5400", ObservedFrequency: 140},
	{AreaName: "Ganginar Par", District: "Mymensingh", Division: "Mymensingh", PostalCode: "2200", ObservedFrequency: 130},
}
