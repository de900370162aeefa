package disease

import "sync"

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the built-in waterborne disease registry. It is built on
// first use and shared afterwards.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := NewRegistry(builtin()...)
		if err != nil {
			panic("disease: built-in registry is invalid: " + err.Error())
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

func builtin() []Disease {
	return []Disease{
		{
			ID:           HepatitisA,
			Name:         "Hepatitis A",
			Description:  "A liver infection caused by the Hepatitis A virus (HAV), highly contagious and spread through contaminated food or water.",
			Symptoms:     []Symptom{Fatigue, Nausea, Jaundice, DarkUrine, AbdominalPain, Vomiting, Fever},
			ChatKeywords: []string{"hepatitis", "jaundice", "hav"},
			Info: map[Topic]string{
				TopicCauses:     "Hepatitis A is caused by the Hepatitis A virus (HAV). It's typically transmitted through consuming food or water contaminated with fecal matter from an infected person.",
				TopicSymptoms:   "Key symptoms are fever, fatigue, loss of appetite, nausea, abdominal pain, dark urine, and jaundice (yellowing of the skin and eyes).",
				TopicTreatment:  "There is no specific treatment for Hepatitis A. The body usually clears the virus on its own. Doctors recommend rest, adequate nutrition, and plenty of fluids. It's vital to avoid alcohol.",
				TopicPrevention: "The best prevention is the Hepatitis A vaccine. Also, always wash your hands with soap and water after using the bathroom and before preparing food. Drink only purified or boiled water.",
			},
			Remedies: []string{
				"Rest is crucial as there's no specific treatment.",
				"Stay hydrated by drinking plenty of fluids.",
				"Avoid alcohol and medications that can harm the liver.",
			},
		},
		{
			ID:           Cholera,
			Name:         "Cholera",
			Description:  "An acute diarrheal illness caused by infection of the intestine with Vibrio cholerae bacteria, which can be severe.",
			Symptoms:     []Symptom{Diarrhea, Vomiting, Dehydration, Nausea},
			ChatKeywords: []string{"cholera"},
			Info: map[Topic]string{
				TopicCauses:     "Cholera is caused by the bacterium Vibrio cholerae, which is found in water or food sources contaminated by feces from an infected person.",
				TopicSymptoms:   "The hallmark symptom is profuse watery diarrhea, often described as 'rice-water stools'. Other symptoms include vomiting and leg cramps. It leads to rapid dehydration.",
				TopicTreatment:  "Immediate rehydration is critical. This is done using Oral Rehydration Solution (ORS). In severe cases, intravenous fluids and antibiotics are required. See a doctor immediately.",
				TopicPrevention: "Prevention relies on ensuring access to clean, safe drinking water and proper sanitation. Boiling or treating water before use is essential in high-risk areas.",
			},
			Remedies: []string{
				"Immediate rehydration with Oral Rehydration Solution (ORS) is key.",
				"Seek urgent medical attention for severe cases.",
				"Zinc supplements can help reduce the duration of diarrhea.",
			},
		},
		{
			ID:           Gastroenteritis,
			Name:         "Gastroenteritis",
			Description:  "An intestinal infection marked by watery diarrhea, abdominal cramps, nausea or vomiting, and sometimes fever.",
			Symptoms:     []Symptom{Diarrhea, Vomiting, Nausea, AbdominalPain, Fever, Dehydration, Headache},
			ChatKeywords: []string{"gastroenteritis", "diarrhea", "stomach flu", "loose motion"},
			Info: map[Topic]string{
				TopicCauses:     "Gastroenteritis, or infectious diarrhea, can be caused by various viruses (like rotavirus and norovirus), bacteria, or parasites. It spreads through contaminated food or water, or contact with an infected person.",
				TopicSymptoms:   "Common symptoms include watery diarrhea, abdominal cramps, nausea, vomiting, and sometimes fever. Dehydration is a major concern.",
				TopicTreatment:  "Treatment focuses on preventing dehydration by drinking plenty of fluids, especially ORS. Eat bland foods (like bananas, rice, toast). Most cases resolve on their own.",
				TopicPrevention: "Frequent and thorough handwashing is the best way to prevent it. Also, ensure food is cooked properly and avoid consuming untreated water.",
			},
			Remedies: []string{
				"Drink plenty of liquids to prevent dehydration (ORS is best).",
				"Eat bland foods like bananas, rice, and toast (BRAT diet).",
				"Avoid dairy, fatty, or spicy foods.",
			},
		},
		{
			ID:           Typhoid,
			Name:         "Typhoid Fever",
			Description:  "A serious bacterial infection caused by Salmonella Typhi, characterized by a sustained high fever.",
			Symptoms:     []Symptom{Fever, Headache, Fatigue, AbdominalPain, RoseSpots, Diarrhea},
			ChatKeywords: []string{"typhoid", "enteric fever"},
			Info: map[Topic]string{
				TopicCauses:     "Typhoid fever is caused by the bacterium Salmonella Typhi. It is spread through contaminated food and water, and by close contact with an infected person.",
				TopicSymptoms:   "It is characterized by a sustained high fever that can reach 104°F (40°C). Other symptoms include headache, weakness, stomach pain, and sometimes a rash of flat, rose-colored spots.",
				TopicTreatment:  "Typhoid requires prompt treatment with antibiotics prescribed by a doctor. Without treatment, it can be fatal.",
				TopicPrevention: "Vaccination is available and recommended for people in high-risk areas. Always drink safe water, avoid raw food from street vendors, and practice good hand hygiene.",
			},
			Remedies: []string{
				"Requires immediate medical attention and is treated with antibiotics.",
				"Drink plenty of fluids to prevent dehydration.",
				"Eat a high-calorie, nutritious diet.",
			},
		},
		{
			ID:           Giardiasis,
			Name:         "Giardiasis",
			Description:  "An intestinal infection caused by a microscopic parasite called Giardia lamblia, often causing bloating and cramps without fever.",
			Symptoms:     []Symptom{Diarrhea, Fatigue, AbdominalPain, Nausea, Dehydration, Bloating, WeightLoss},
			ChatKeywords: []string{"giardiasis", "giardia"},
			Info: map[Topic]string{
				TopicCauses:     "This intestinal infection is caused by a microscopic parasite called Giardia lamblia. It is found in contaminated water, food, or soil and can be transmitted from person to person.",
				TopicSymptoms:   "Symptoms can include watery diarrhea, gas, greasy stools that tend to float, stomach cramps, and dehydration. Some people have no symptoms.",
				TopicTreatment:  "A doctor will prescribe specific anti-parasitic medications to treat Giardiasis.",
				TopicPrevention: "Avoid swallowing water from pools, lakes, or streams. Practice good hygiene, especially handwashing. Peel or wash raw fruits and vegetables before eating.",
			},
			Remedies: []string{
				"Medical treatment with prescription drugs is usually required.",
				"Stay well-hydrated.",
				"Avoid caffeine and dairy products, which can worsen diarrhea.",
			},
		},
		{
			ID:           Crypto,
			Name:         "Cryptosporidiosis",
			Description:  "A diarrheal disease caused by the microscopic parasite Cryptosporidium. It can cause watery diarrhea and is a common cause of waterborne disease.",
			Symptoms:     []Symptom{Diarrhea, Dehydration, WeightLoss, AbdominalPain, Fever, Nausea, Vomiting},
			ChatKeywords: []string{"cryptosporidiosis", "crypto"},
			Info: map[Topic]string{
				TopicCauses:     "Cryptosporidiosis is caused by the microscopic parasite Cryptosporidium. It is a common cause of waterborne disease and can be found in water, food, soil, or on surfaces contaminated with the feces of an infected human or animal.",
				TopicSymptoms:   "The primary symptom is watery diarrhea. Other symptoms include stomach cramps, dehydration, nausea, vomiting, fever, and weight loss.",
				TopicTreatment:  "Most people with a healthy immune system recover without treatment. The focus is on drinking plenty of fluids to prevent dehydration. A doctor may prescribe anti-diarrheal medicine.",
				TopicPrevention: "Good hygiene, including thorough handwashing, is key. Do not swallow water when swimming in public pools or natural bodies of water.",
			},
			Remedies: []string{
				"Most people recover without treatment.",
				"Drink plenty of fluids to prevent dehydration.",
				"Anti-diarrheal medicine may help, but consult a doctor first.",
			},
		},
	}
}
