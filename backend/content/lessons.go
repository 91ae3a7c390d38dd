package content

const (
	DrillKindDNABuilder    = "dna-builder"
	DrillKindCodonGame     = "codon-challenge"
	DrillKindMutationSim   = "mutation-simulator"
	DrillKindCRISPRDesign  = "crispr-designer"
	DrillKindEthicsChoices = "ethics-simulator"
)

var lessons = []Lesson{
	{
		ID:         1,
		Title:      "DNA Structure & Components",
		Subtitle:   "Understanding the building blocks of life",
		DrillKind:  DrillKindDNABuilder,
		DrillTitle: "Interactive DNA Builder",
		Content: "DNA (Deoxyribonucleic Acid) carries the genetic information of living organisms. " +
			"It forms a double helix of nucleotides, each built from a deoxyribose sugar, a phosphate group " +
			"and one of four nitrogen bases: Adenine, Thymine, Guanine and Cytosine. " +
			"Bases pair by strict rules, A with T (2 hydrogen bonds) and G with C (3 hydrogen bonds), " +
			"which is what lets DNA replicate and pass genetic information on.",
		QuizQuestions: []Question{
			{
				ID:       1,
				Question: "Which of the following is NOT a component of a DNA nucleotide?",
				Options: []Option{
					{Label: "Deoxyribose sugar", Value: "A"},
					{Label: "Phosphate group", Value: "B"},
					{Label: "Nitrogen base", Value: "C"},
					{Label: "Amino acid", Value: "D"},
				},
				CorrectAnswer: "D",
				Explanation:   "Amino acids are the building blocks of proteins, not DNA nucleotides.",
			},
			{
				ID:       2,
				Question: "How many hydrogen bonds hold an A-T base pair together?",
				Options: []Option{
					{Label: "1", Value: "A"},
					{Label: "2", Value: "B"},
					{Label: "3", Value: "C"},
					{Label: "4", Value: "D"},
				},
				CorrectAnswer: "B",
				Explanation:   "A-T base pairs are held together by 2 hydrogen bonds, while G-C pairs have 3.",
			},
			{
				ID:       3,
				Question: "What shape does DNA form?",
				Options: []Option{
					{Label: "Single helix", Value: "A"},
					{Label: "Double helix", Value: "B"},
					{Label: "Triple helix", Value: "C"},
					{Label: "Linear chain", Value: "D"},
				},
				CorrectAnswer: "B",
				Explanation:   "DNA forms a double helix structure, like a twisted ladder.",
			},
			{
				ID:       4,
				Question: "Which base would pair with Guanine (G)?",
				Options: []Option{
					{Label: "Adenine (A)", Value: "A"},
					{Label: "Thymine (T)", Value: "B"},
					{Label: "Cytosine (C)", Value: "C"},
					{Label: "Uracil (U)", Value: "D"},
				},
				CorrectAnswer: "C",
				Explanation:   "Guanine always pairs with Cytosine in DNA.",
			},
			{
				ID:       5,
				Question: "What is the sugar component in DNA called?",
				Options: []Option{
					{Label: "Ribose", Value: "A"},
					{Label: "Deoxyribose", Value: "B"},
					{Label: "Glucose", Value: "C"},
					{Label: "Fructose", Value: "D"},
				},
				CorrectAnswer: "B",
				Explanation:   "DNA contains deoxyribose sugar, which differs from RNA's ribose.",
			},
		},
	},
	{
		ID:         2,
		Title:      "Central Dogma: DNA to Protein",
		Subtitle:   "From genes to traits through RNA",
		DrillKind:  DrillKindCodonGame,
		DrillTitle: "Codon Translation Challenge",
		Content: "Gene expression flows from DNA to RNA to protein. Transcription copies a gene into mRNA " +
			"inside the nucleus; translation reads the mRNA at ribosomes three bases at a time. " +
			"Each three-base codon specifies one amino acid, with AUG starting the chain and " +
			"UAA, UAG and UGA stopping it. tRNA molecules deliver the matching amino acids.",
		QuizQuestions: []Question{
			{
				ID:       1,
				Question: "What is the first step in gene expression?",
				Options: []Option{
					{Label: "Translation", Value: "A"},
					{Label: "Transcription", Value: "B"},
					{Label: "Replication", Value: "C"},
					{Label: "Mutation", Value: "D"},
				},
				CorrectAnswer: "B",
				Explanation:   "Transcription is the first step, where DNA is copied into RNA.",
			},
			{
				ID:       2,
				Question: "Where does transcription occur in eukaryotic cells?",
				Options: []Option{
					{Label: "Cytoplasm", Value: "A"},
					{Label: "Nucleus", Value: "B"},
					{Label: "Ribosomes", Value: "C"},
					{Label: "Mitochondria", Value: "D"},
				},
				CorrectAnswer: "B",
				Explanation:   "In eukaryotes, transcription occurs in the nucleus where DNA is located.",
			},
			{
				ID:       3,
				Question: "How many bases make up a codon?",
				Options: []Option{
					{Label: "2", Value: "A"},
					{Label: "3", Value: "B"},
					{Label: "4", Value: "C"},
					{Label: "5", Value: "D"},
				},
				CorrectAnswer: "B",
				Explanation:   "A codon consists of three consecutive bases on mRNA.",
			},
			{
				ID:       4,
				Question: "Which RNA molecule carries amino acids to the ribosome?",
				Options: []Option{
					{Label: "mRNA", Value: "A"},
					{Label: "tRNA", Value: "B"},
					{Label: "rRNA", Value: "C"},
					{Label: "snRNA", Value: "D"},
				},
				CorrectAnswer: "B",
				Explanation:   "tRNA (transfer RNA) carries amino acids to the ribosome during translation.",
			},
			{
				ID:       5,
				Question: "What is the start codon in the genetic code?",
				Options: []Option{
					{Label: "UAA", Value: "A"},
					{Label: "AUG", Value: "B"},
					{Label: "UGA", Value: "C"},
					{Label: "UAG", Value: "D"},
				},
				CorrectAnswer: "B",
				Explanation:   "AUG is the start codon that begins protein synthesis and codes for methionine.",
			},
		},
	},
	{
		ID:         3,
		Title:      "Genes, Heredity & Mutations",
		Subtitle:   "How traits are passed and changed",
		DrillKind:  DrillKindMutationSim,
		DrillTitle: "Mutation Simulator",
		Content: "Traits pass from parents to offspring through alleles; genotype is the genetic makeup, " +
			"phenotype the observable result. Humans carry 46 chromosomes in 23 pairs. " +
			"Mutations change the DNA sequence: silent mutations leave the protein unchanged, " +
			"missense mutations swap one amino acid, nonsense mutations truncate the protein and " +
			"frameshift mutations scramble everything downstream. Not every mutation is harmful.",
		QuizQuestions: []Question{
			{
				ID:       1,
				Question: "What is the difference between genotype and phenotype?",
				Options: []Option{
					{Label: "Genotype is observable, phenotype is hidden", Value: "A"},
					{Label: "Genotype is genetic makeup, phenotype is observable traits", Value: "B"},
					{Label: "They are the same thing", Value: "C"},
					{Label: "Genotype is proteins, phenotype is DNA", Value: "D"},
				},
				CorrectAnswer: "B",
				Explanation:   "Genotype refers to the genetic makeup (DNA), while phenotype refers to observable traits.",
			},
			{
				ID:       2,
				Question: "A heterozygous individual has:",
				Options: []Option{
					{Label: "Two identical alleles", Value: "A"},
					{Label: "Two different alleles", Value: "B"},
					{Label: "No alleles", Value: "C"},
					{Label: "Only dominant alleles", Value: "D"},
				},
				CorrectAnswer: "B",
				Explanation:   "Heterozygous means having two different alleles for the same gene (e.g., Aa).",
			},
			{
				ID:       3,
				Question: "A mutation that changes one amino acid in a protein is called:",
				Options: []Option{
					{Label: "Silent mutation", Value: "A"},
					{Label: "Missense mutation", Value: "B"},
					{Label: "Nonsense mutation", Value: "C"},
					{Label: "Frameshift mutation", Value: "D"},
				},
				CorrectAnswer: "B",
				Explanation:   "A missense mutation results in a different amino acid being incorporated into the protein.",
			},
			{
				ID:       4,
				Question: "How many chromosomes do humans typically have?",
				Options: []Option{
					{Label: "23", Value: "A"},
					{Label: "46", Value: "B"},
					{Label: "48", Value: "C"},
					{Label: "92", Value: "D"},
				},
				CorrectAnswer: "B",
				Explanation:   "Humans have 46 chromosomes arranged in 23 pairs.",
			},
			{
				ID:       5,
				Question: "Which type of mutation would most likely have the greatest effect on a protein?",
				Options: []Option{
					{Label: "Silent mutation", Value: "A"},
					{Label: "Missense mutation", Value: "B"},
					{Label: "Frameshift mutation", Value: "C"},
					{Label: "Point mutation", Value: "D"},
				},
				CorrectAnswer: "C",
				Explanation:   "Frameshift mutations change the reading frame, affecting all amino acids downstream.",
			},
		},
	},
	{
		ID:         4,
		Title:      "Genetic Engineering Concepts",
		Subtitle:   "Tools and techniques for modifying genes",
		DrillKind:  DrillKindCRISPRDesign,
		DrillTitle: "Virtual CRISPR Designer",
		Content: "Genetic engineering moves and edits genes deliberately. Restriction enzymes cut DNA at " +
			"specific recognition sequences, plasmids carry recombinant DNA into bacteria, and antibiotic " +
			"resistance genes mark the cells that took the plasmid up. CRISPR-Cas9 uses a guide RNA to steer " +
			"a cutting enzyme to an exact target sequence, making precise edits possible.",
		QuizQuestions: []Question{
			{
				ID:       1,
				Question: "What is the function of restriction enzymes?",
				Options: []Option{
					{Label: "Join DNA fragments together", Value: "A"},
					{Label: "Cut DNA at specific sequences", Value: "B"},
					{Label: "Replicate DNA", Value: "C"},
					{Label: "Translate mRNA", Value: "D"},
				},
				CorrectAnswer: "B",
				Explanation:   "Restriction enzymes cut DNA at specific recognition sequences.",
			},
			{
				ID:       2,
				Question: "What is a plasmid?",
				Options: []Option{
					{Label: "A type of protein", Value: "A"},
					{Label: "Small circular DNA in bacteria", Value: "B"},
					{Label: "A restriction enzyme", Value: "C"},
					{Label: "A type of chromosome", Value: "D"},
				},
				CorrectAnswer: "B",
				Explanation:   "Plasmids are small, circular DNA molecules found in bacteria.",
			},
			{
				ID:       3,
				Question: "In CRISPR-Cas9, what guides the system to the target DNA sequence?",
				Options: []Option{
					{Label: "DNA ligase", Value: "A"},
					{Label: "Guide RNA", Value: "B"},
					{Label: "Restriction enzyme", Value: "C"},
					{Label: "Plasmid", Value: "D"},
				},
				CorrectAnswer: "B",
				Explanation:   "Guide RNA directs the CRISPR-Cas9 system to the specific target sequence.",
			},
			{
				ID:       4,
				Question: "What is recombinant DNA?",
				Options: []Option{
					{Label: "DNA that has been replicated", Value: "A"},
					{Label: "DNA combined from different sources", Value: "B"},
					{Label: "Mutated DNA", Value: "C"},
					{Label: "DNA without genes", Value: "D"},
				},
				CorrectAnswer: "B",
				Explanation:   "Recombinant DNA is formed by combining DNA from different sources.",
			},
			{
				ID:       5,
				Question: "Why are antibiotic resistance genes often included in plasmids used for genetic engineering?",
				Options: []Option{
					{Label: "To make bacteria healthier", Value: "A"},
					{Label: "To select cells that took up the plasmid", Value: "B"},
					{Label: "To cut DNA", Value: "C"},
					{Label: "To produce proteins", Value: "D"},
				},
				CorrectAnswer: "B",
				Explanation:   "Antibiotic resistance genes serve as selectable markers to identify successfully transformed cells.",
			},
		},
	},
	{
		ID:         5,
		Title:      "GMO Applications & Ethics",
		Subtitle:   "Real-world applications and considerations",
		DrillKind:  DrillKindEthicsChoices,
		DrillTitle: "Ethics Decision Simulator",
		Content: "Genetically modified organisms put engineering to work: insulin and vaccines from modified " +
			"microbes, pest-resistant Bt crops, vitamin-A Golden Rice, biofuels and bioremediation. " +
			"The same technology raises real concerns, from gene flow into wild relatives to corporate " +
			"control of seed supplies, so decisions need evidence, regulation and input from every " +
			"stakeholder group.",
		QuizQuestions: []Question{
			{
				ID:       1,
				Question: "Which was one of the first GMO pharmaceuticals produced?",
				Options: []Option{
					{Label: "Penicillin", Value: "A"},
					{Label: "Human insulin", Value: "B"},
					{Label: "Aspirin", Value: "C"},
					{Label: "Vitamin C", Value: "D"},
				},
				CorrectAnswer: "B",
				Explanation:   "Human insulin was one of the first successfully produced GMO pharmaceuticals.",
			},
			{
				ID:       2,
				Question: "What is Golden Rice designed to address?",
				Options: []Option{
					{Label: "Pest resistance", Value: "A"},
					{Label: "Vitamin A deficiency", Value: "B"},
					{Label: "Drought tolerance", Value: "C"},
					{Label: "Herbicide resistance", Value: "D"},
				},
				CorrectAnswer: "B",
				Explanation:   "Golden Rice is genetically modified to produce beta-carotene, addressing vitamin A deficiency.",
			},
			{
				ID:       3,
				Question: "Which is a potential environmental concern about GMO crops?",
				Options: []Option{
					{Label: "Increased crop yields", Value: "A"},
					{Label: "Gene flow to wild relatives", Value: "B"},
					{Label: "Better nutrition", Value: "C"},
					{Label: "Reduced pesticide use", Value: "D"},
				},
				CorrectAnswer: "B",
				Explanation:   "Gene flow from GMO crops to wild relatives is a legitimate environmental concern.",
			},
			{
				ID:       4,
				Question: "Bt crops are genetically modified to:",
				Options: []Option{
					{Label: "Resist herbicides", Value: "A"},
					{Label: "Produce natural pesticides", Value: "B"},
					{Label: "Grow faster", Value: "C"},
					{Label: "Resist viruses", Value: "D"},
				},
				CorrectAnswer: "B",
				Explanation:   "Bt crops produce proteins from Bacillus thuringiensis that act as natural pesticides.",
			},
			{
				ID:       5,
				Question: "Which stakeholder perspective is important in GMO decision-making?",
				Options: []Option{
					{Label: "Scientists only", Value: "A"},
					{Label: "Farmers only", Value: "B"},
					{Label: "Consumers only", Value: "C"},
					{Label: "All stakeholders including scientists, farmers, consumers, and regulators", Value: "D"},
				},
				CorrectAnswer: "D",
				Explanation:   "GMO decisions should consider perspectives from all stakeholders for balanced outcomes.",
			},
		},
	},
}
