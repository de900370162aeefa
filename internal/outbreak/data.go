package outbreak

import (
	"healify/internal/disease"
)

// localizedName marks an outbreak whose name comes from the catalog.
const localizedName = ""

var outbreaks = []Outbreak{
	{ID: 1, Name: localizedName, Disease: disease.Gastroenteritis, State: "Assam", Cases: 45000, Rate: 18.5, Severity: SeverityCritical,
		Position: Position{26.2006, 92.9376}, HealthContact: "104", NearbyHospitals: 15,
		LatestNews: "Govt. launches new initiative for clean drinking water in rural Assam."},
	{ID: 2, Name: "Cholera Outbreak", Disease: disease.Cholera, State: "Meghalaya", Cases: 32000, Rate: 16.2, Severity: SeverityHigh,
		Position: Position{25.4670, 91.3662}, HealthContact: "108", NearbyHospitals: 8,
		LatestNews: "Health department issues high alert following flash floods in Garo Hills."},
	{ID: 3, Name: "Typhoid Outbreak", Disease: disease.Typhoid, State: "Manipur", Cases: 28000, Rate: 15.8, Severity: SeverityMedium,
		Position: Position{24.6637, 93.9063}, HealthContact: "102", NearbyHospitals: 11,
		LatestNews: "Vaccination drive for Typhoid begins in Imphal and surrounding areas."},
	{ID: 4, Name: "Hepatitis Outbreak", Disease: disease.HepatitisA, State: "Nagaland", Cases: 25000, Rate: 14.7, Severity: SeverityLow,
		Position: Position{26.1584, 94.5624}, HealthContact: "103", NearbyHospitals: 7,
		LatestNews: "Awareness campaigns about contaminated water sources are underway."},
	{ID: 5, Name: "Gastroenteritis", Disease: disease.Gastroenteritis, State: "Arunachal Pradesh", Cases: 18000, Rate: 12.3, Severity: SeverityMedium,
		Position: Position{28.2180, 94.7278}, HealthContact: "108", NearbyHospitals: 5,
		LatestNews: "Mobile medical units dispatched to remote eastern districts."},
}

var stateStats = []StateStat{
	{State: "Assam", Cases: 45000, Rate: 18.5},
	{State: "Meghalaya", Cases: 32000, Rate: 16.2},
	{State: "Manipur", Cases: 28000, Rate: 15.8},
	{State: "Nagaland", Cases: 25000, Rate: 14.7},
	{State: "Arunachal Pradesh", Cases: 18000, Rate: 12.3},
}

var trends = []TrendPoint{
	{Month: "Jan", Diarrhea: 120, Cholera: 85, Typhoid: 65, Hepatitis: 45},
	{Month: "Feb", Diarrhea: 150, Cholera: 95, Typhoid: 75, Hepatitis: 55},
	{Month: "Mar", Diarrhea: 200, Cholera: 120, Typhoid: 100, Hepatitis: 70},
	{Month: "Apr", Diarrhea: 280, Cholera: 180, Typhoid: 150, Hepatitis: 110},
	{Month: "May", Diarrhea: 350, Cholera: 220, Typhoid: 180, Hepatitis: 140},
	{Month: "Jun", Diarrhea: 420, Cholera: 280, Typhoid: 220, Hepatitis: 180},
	{Month: "Jul", Diarrhea: 500, Cholera: 350, Typhoid: 280, Hepatitis: 230},
	{Month: "Aug", Diarrhea: 480, Cholera: 320, Typhoid: 260, Hepatitis: 210},
	{Month: "Sep", Diarrhea: 400, Cholera: 280, Typhoid: 220, Hepatitis: 180},
	{Month: "Oct", Diarrhea: 320, Cholera: 220, Typhoid: 180, Hepatitis: 150},
	{Month: "Nov", Diarrhea: 200, Cholera: 150, Typhoid: 120, Hepatitis: 90},
	{Month: "Dec", Diarrhea: 150, Cholera: 100, Typhoid: 80, Hepatitis: 60},
}
