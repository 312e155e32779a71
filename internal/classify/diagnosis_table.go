package classify

// DefaultDiagnosisTable is the built-in diagnosis-term table used by the
// recategorize command. Order is priority order.
func DefaultDiagnosisTable() []DiagnosisCategory {
	return []DiagnosisCategory{
		{
			Name: "infectious",
			Primary: []string{
				"infection", "bacterial", "viral", "fungal", "parasitic",
				"sepsis", "pneumonia", "meningitis", "tuberculosis",
				"abscess", "cellulitis", "mrsa", "hiv", "aids",
				"hepatitis", "influenza", "rabies", "malaria", "dengue",
				"antibiotic", "antimicrobial", "vaccine",
				"gonococcal", "chlamydia", "syphilis", "herpes", "candida",
				"streptococcus", "staphylococcus", "e. coli", "salmonella",
			},
			Secondary: []string{"fever", "cough with fever", "sore throat"},
		},
		{
			Name: "diabetes",
			Primary: []string{
				"diabetes", "diabetic", "insulin", "ketoacidosis",
				"hyperglycemia", "hypoglycemia", "blood sugar",
				"glucose control", "metformin", "sulfonylurea", "glipizide",
				"hba1c",
			},
			Secondary: []string{"glycogen depletion"},
		},
		{
			Name: "cardiovascular",
			Primary: []string{
				"myocardial infarction", "heart attack", "angina", "coronary",
				"arrhythmia", "atrial fibrillation", "heart failure",
				"cardiomyopathy", "stroke", "infarct", "embolism",
				"thrombosis", "arterial", "cardiac", "endocarditis",
				"pericarditis", "aortic",
			},
			Secondary: []string{"chest pain", "blood pressure", "hypertension"},
		},
		{
			Name: "respiratory",
			Primary: []string{
				"asthma", "copd", "bronchitis", "emphysema", "pulmonary",
				"respiratory failure", "hypoxia", "sleep apnea",
				"pulmonary embolism", "pleural effusion", "pneumothorax",
				"lung cancer", "respiratory distress", "dyspnea",
			},
			Secondary: []string{"cough", "shortness of breath", "breathing"},
		},
		{
			Name: "gastrointestinal",
			Primary: []string{
				"appendicitis", "cholecystitis", "pancreatitis", "cirrhosis",
				"crohn", "ulcerative colitis", "diverticulitis",
				"bowel obstruction", "peptic ulcer", "gastritis",
				"esophageal", "liver disease", "hepatomegaly", "gi bleed",
				"celiac", "malabsorption",
			},
			Secondary: []string{"abdominal pain", "nausea", "vomiting", "diarrhea"},
		},
		{
			Name: "neurological",
			Primary: []string{
				"seizure", "epilepsy", "cerebral", "encephalitis",
				"multiple sclerosis", "parkinson", "dementia", "alzheimer",
				"migraine", "brain tumor", "concussion", "neuropathy",
				"guillain-barre", "myasthenia gravis",
				"altered mental status", "tremor", "paralysis",
			},
			Secondary: []string{"headache", "dizziness"},
		},
		{
			Name: "renal",
			Primary: []string{
				"acute kidney injury", "chronic kidney disease",
				"nephrotic syndrome", "nephritic syndrome",
				"glomerulonephritis", "renal failure", "dialysis",
				"pyelonephritis", "renal calculi", "kidney stone", "uremia",
				"hyperkalemia", "urinary tract infection",
			},
			Secondary: []string{"creatinine", "kidney"},
		},
		{
			Name: "hematology",
			Primary: []string{
				"anemia", "iron deficiency", "b12 deficiency", "folate",
				"sickle cell", "thalassemia", "leukemia", "lymphoma",
				"multiple myeloma", "thrombocytopenia", "hemophilia",
				"von willebrand", "coagulopathy", "transfusion reaction",
			},
			Secondary: []string{"bleeding", "bruising", "hemoglobin"},
		},
	}
}
