package content

var pretestQuestions = []Question{
	{
		ID:       1,
		Question: "What does DNA stand for?",
		Options: []Option{
			{Label: "Deoxyribonucleic Acid", Value: "A"},
			{Label: "Dynamic Nucleic Acid", Value: "B"},
			{Label: "Double Nucleic Arrangement", Value: "C"},
			{Label: "Deoxy Nitrogen Atom", Value: "D"},
		},
		CorrectAnswer: "A",
		Explanation:   "DNA stands for Deoxyribonucleic Acid, the molecule that carries genetic information.",
	},
	{
		ID:       2,
		Question: "Which three parts make up a DNA nucleotide?",
		Options: []Option{
			{Label: "Phosphate, sulfur, lipid", Value: "A"},
			{Label: "Sugar, phosphate, nitrogen base", Value: "B"},
			{Label: "Glucose, RNA, ribose", Value: "C"},
			{Label: "Carbon, oxygen, nitrogen", Value: "D"},
		},
		CorrectAnswer: "B",
		Explanation:   "A DNA nucleotide consists of a sugar (deoxyribose), a phosphate group, and a nitrogen base.",
	},
	{
		ID:       3,
		Question: "Which base pairs with Adenine in DNA?",
		Options: []Option{
			{Label: "Guanine", Value: "A"},
			{Label: "Cytosine", Value: "B"},
			{Label: "Thymine", Value: "C"},
			{Label: "Uracil", Value: "D"},
		},
		CorrectAnswer: "C",
		Explanation:   "In DNA, Adenine (A) pairs with Thymine (T) through hydrogen bonds.",
	},
	{
		ID:       4,
		Question: "What type of bonds hold DNA strands together?",
		Options: []Option{
			{Label: "Hydrogen bonds", Value: "A"},
			{Label: "Ionic bonds", Value: "B"},
			{Label: "Peptide bonds", Value: "C"},
			{Label: "Covalent bonds", Value: "D"},
		},
		CorrectAnswer: "A",
		Explanation:   "Hydrogen bonds between complementary base pairs hold the two DNA strands together.",
	},
	{
		ID:       5,
		Question: "Key difference between DNA and RNA?",
		Options: []Option{
			{Label: "DNA has uracil, RNA has thymine", Value: "A"},
			{Label: "DNA has deoxyribose, RNA has ribose", Value: "B"},
			{Label: "DNA is single-stranded, RNA is double-stranded", Value: "C"},
			{Label: "DNA only found in prokaryotes", Value: "D"},
		},
		CorrectAnswer: "B",
		Explanation:   "DNA contains deoxyribose sugar while RNA contains ribose sugar.",
	},
	{
		ID:       6,
		Question: "Where is most DNA stored in eukaryotic cells?",
		Options: []Option{
			{Label: "Ribosomes", Value: "A"},
			{Label: "Cytoplasm", Value: "B"},
			{Label: "Nucleus", Value: "C"},
			{Label: "Mitochondria", Value: "D"},
		},
		CorrectAnswer: "C",
		Explanation:   "In eukaryotic cells, most DNA is stored in the nucleus.",
	},
	{
		ID:       7,
		Question: "A gene is best described as?",
		Options: []Option{
			{Label: "A protein made of amino acids", Value: "A"},
			{Label: "Segment of DNA coding for a protein", Value: "B"},
			{Label: "Entire DNA sequence", Value: "C"},
			{Label: "A group of chromosomes", Value: "D"},
		},
		CorrectAnswer: "B",
		Explanation:   "A gene is a specific segment of DNA that codes for a functional product, usually a protein.",
	},
	{
		ID:       8,
		Question: "What is a codon?",
		Options: []Option{
			{Label: "3-base sequence on mRNA", Value: "A"},
			{Label: "Enzyme in DNA replication", Value: "B"},
			{Label: "Protein-coding region", Value: "C"},
			{Label: "Sequence of tRNA bases", Value: "D"},
		},
		CorrectAnswer: "A",
		Explanation:   "A codon is a sequence of three bases on mRNA that specifies an amino acid.",
	},
	{
		ID:       9,
		Question: "Transcription is the process where?",
		Options: []Option{
			{Label: "RNA is translated into protein", Value: "A"},
			{Label: "Proteins are folded", Value: "B"},
			{Label: "DNA is copied into RNA", Value: "C"},
			{Label: "mRNA is converted to DNA", Value: "D"},
		},
		CorrectAnswer: "C",
		Explanation:   "Transcription is the process where DNA is used as a template to make RNA.",
	},
	{
		ID:       10,
		Question: "Where does translation occur?",
		Options: []Option{
			{Label: "Nucleus", Value: "A"},
			{Label: "Ribosomes", Value: "B"},
			{Label: "Mitochondria", Value: "C"},
			{Label: "Golgi apparatus", Value: "D"},
		},
		CorrectAnswer: "B",
		Explanation:   "Translation, the process of making proteins from mRNA, occurs at ribosomes.",
	},
	{
		ID:       11,
		Question: "A mutation is?",
		Options: []Option{
			{Label: "Normal DNA replication", Value: "A"},
			{Label: "Correct DNA repair", Value: "B"},
			{Label: "Removal of a gene", Value: "C"},
			{Label: "Change in DNA sequence", Value: "D"},
		},
		CorrectAnswer: "D",
		Explanation:   "A mutation is a change in the DNA sequence that can affect gene function.",
	},
	{
		ID:       12,
		Question: "Combining DNA from different sources is called?",
		Options: []Option{
			{Label: "Recombinant DNA", Value: "A"},
			{Label: "Replication", Value: "B"},
			{Label: "Duplication", Value: "C"},
			{Label: "Insertion", Value: "D"},
		},
		CorrectAnswer: "A",
		Explanation:   "Recombinant DNA is DNA that has been formed by joining sequences from different sources.",
	},
	{
		ID:       13,
		Question: "A plasmid is?",
		Options: []Option{
			{Label: "Protein structure", Value: "A"},
			{Label: "Linear DNA in eukaryotes", Value: "B"},
			{Label: "Small circular DNA in bacteria", Value: "C"},
			{Label: "DNA mutation", Value: "D"},
		},
		CorrectAnswer: "C",
		Explanation:   "A plasmid is a small, circular piece of DNA found in bacteria, separate from chromosomal DNA.",
	},
	{
		ID:       14,
		Question: "Which statement about CRISPR is accurate?",
		Options: []Option{
			{Label: "Randomly cuts DNA", Value: "A"},
			{Label: "Cuts DNA at specific sequences", Value: "B"},
			{Label: "Deletes chromosomes", Value: "C"},
			{Label: "Only found in humans", Value: "D"},
		},
		CorrectAnswer: "B",
		Explanation:   "CRISPR is a precise gene-editing tool that can cut DNA at specific sequences.",
	},
	{
		ID:       15,
		Question: "Which is a GMO application?",
		Options: []Option{
			{Label: "Developing vaccines", Value: "A"},
			{Label: "Fossil fuel production", Value: "B"},
			{Label: "Pest-resistant crops", Value: "C"},
			{Label: "Solar panel efficiency", Value: "D"},
		},
		CorrectAnswer: "C",
		Explanation:   "Pest-resistant crops are a common application of genetic modification technology.",
	},
	{
		ID:       16,
		Question: "Ethical concern about GMOs?",
		Options: []Option{
			{Label: "Cost of seeds", Value: "A"},
			{Label: "Increased food supply", Value: "B"},
			{Label: "Environmental impact and health risks", Value: "C"},
			{Label: "Improved nutrition", Value: "D"},
		},
		CorrectAnswer: "C",
		Explanation:   "Environmental impact and potential health risks are major ethical concerns about GMOs.",
	},
	{
		ID:       17,
		Question: "If an allele is dominant, it?",
		Options: []Option{
			{Label: "Masks the recessive allele", Value: "A"},
			{Label: "Is weaker than recessive", Value: "B"},
			{Label: "Mutates into recessive", Value: "C"},
			{Label: "Cannot be inherited", Value: "D"},
		},
		CorrectAnswer: "A",
		Explanation:   "A dominant allele masks the expression of a recessive allele when both are present.",
	},
	{
		ID:       18,
		Question: "Phenotype refers to?",
		Options: []Option{
			{Label: "Genetic code", Value: "A"},
			{Label: "Observable traits", Value: "B"},
			{Label: "Hidden alleles", Value: "C"},
			{Label: "DNA sequence", Value: "D"},
		},
		CorrectAnswer: "B",
		Explanation:   "Phenotype refers to the observable physical or biochemical traits of an organism.",
	},
	{
		ID:       19,
		Question: "A transgenic organism means?",
		Options: []Option{
			{Label: "Has no mutations", Value: "A"},
			{Label: "Cannot reproduce", Value: "B"},
			{Label: "Contains genes from another species", Value: "C"},
			{Label: "Made of RNA only", Value: "D"},
		},
		CorrectAnswer: "C",
		Explanation:   "A transgenic organism contains genes that have been transferred from another species.",
	},
	{
		ID:       20,
		Question: "What is a promoter's role in gene expression?",
		Options: []Option{
			{Label: "Ends transcription", Value: "A"},
			{Label: "Translates RNA", Value: "B"},
			{Label: "Replicates DNA", Value: "C"},
			{Label: "Starts transcription", Value: "D"},
		},
		CorrectAnswer: "D",
		Explanation:   "A promoter is a DNA sequence that signals where transcription should begin.",
	},
}

var posttestQuestions = []Question{
	{
		ID:       1,
		Question: "DNA abbreviation stands for?",
		Options: []Option{
			{Label: "Deoxyribonucleic Acid", Value: "A"},
			{Label: "Dynamic Nucleic Acid", Value: "B"},
			{Label: "Double Nitrogen Arrangement", Value: "C"},
			{Label: "Deoxy Nucleic Atom", Value: "D"},
		},
		CorrectAnswer: "A",
	},
	{
		ID:       2,
		Question: "Components of a nucleotide?",
		Options: []Option{
			{Label: "Protein, lipid, base", Value: "A"},
			{Label: "Sugar, phosphate, base", Value: "B"},
			{Label: "Starch, carbon, nitrogen", Value: "C"},
			{Label: "RNA, ribose, uracil", Value: "D"},
		},
		CorrectAnswer: "B",
	},
	{
		ID:       3,
		Question: "Adenine pairs with which base?",
		Options: []Option{
			{Label: "Guanine", Value: "A"},
			{Label: "Cytosine", Value: "B"},
			{Label: "Thymine", Value: "C"},
			{Label: "Uracil", Value: "D"},
		},
		CorrectAnswer: "C",
	},
	{
		ID:       4,
		Question: "What keeps DNA bases together?",
		Options: []Option{
			{Label: "Hydrogen bonds", Value: "A"},
			{Label: "Ionic bonds", Value: "B"},
			{Label: "Peptide bonds", Value: "C"},
			{Label: "Disulfide bonds", Value: "D"},
		},
		CorrectAnswer: "A",
	},
	{
		ID:       5,
		Question: "Which sugar is in DNA?",
		Options: []Option{
			{Label: "Glucose", Value: "A"},
			{Label: "Deoxyribose", Value: "B"},
			{Label: "Ribose", Value: "C"},
			{Label: "Lactose", Value: "D"},
		},
		CorrectAnswer: "B",
	},
	{
		ID:       6,
		Question: "Where is DNA located in eukaryotes?",
		Options: []Option{
			{Label: "Ribosomes", Value: "A"},
			{Label: "Cytoplasm", Value: "B"},
			{Label: "Nucleus", Value: "C"},
			{Label: "Mitochondria", Value: "D"},
		},
		CorrectAnswer: "C",
	},
	{
		ID:       7,
		Question: "Which best defines a gene?",
		Options: []Option{
			{Label: "Protein chain", Value: "A"},
			{Label: "DNA segment coding for a protein", Value: "B"},
			{Label: "Chromosome set", Value: "C"},
			{Label: "mRNA transcript", Value: "D"},
		},
		CorrectAnswer: "B",
	},
	{
		ID:       8,
		Question: "A sequence of 3 mRNA bases is called?",
		Options: []Option{
			{Label: "Codon", Value: "A"},
			{Label: "Triplet protein", Value: "B"},
			{Label: "Base pair", Value: "C"},
			{Label: "Exon", Value: "D"},
		},
		CorrectAnswer: "A",
	},
	{
		ID:       9,
		Question: "Process that makes RNA from DNA?",
		Options: []Option{
			{Label: "Replication", Value: "A"},
			{Label: "Translation", Value: "B"},
			{Label: "Transcription", Value: "C"},
			{Label: "Mutation", Value: "D"},
		},
		CorrectAnswer: "C",
	},
	{
		ID:       10,
		Question: "Ribosomes are responsible for?",
		Options: []Option{
			{Label: "DNA synthesis", Value: "A"},
			{Label: "Translation of proteins", Value: "B"},
			{Label: "Transcription", Value: "C"},
			{Label: "Mutation repair", Value: "D"},
		},
		CorrectAnswer: "B",
	},
	{
		ID:       11,
		Question: "Mutation best described as?",
		Options: []Option{
			{Label: "DNA duplication", Value: "A"},
			{Label: "Corrected DNA sequence", Value: "B"},
			{Label: "Change in DNA sequence", Value: "C"},
			{Label: "Stable gene", Value: "D"},
		},
		CorrectAnswer: "C",
	},
	{
		ID:       12,
		Question: "Recombinant DNA means?",
		Options: []Option{
			{Label: "DNA from two sources combined", Value: "A"},
			{Label: "Copying RNA", Value: "B"},
			{Label: "Mutation in sequence", Value: "C"},
			{Label: "Chromosome deletion", Value: "D"},
		},
		CorrectAnswer: "A",
	},
	{
		ID:       13,
		Question: "Plasmid is best described as?",
		Options: []Option{
			{Label: "Enzyme for DNA cutting", Value: "A"},
			{Label: "Linear DNA", Value: "B"},
			{Label: "Circular bacterial DNA", Value: "C"},
			{Label: "RNA molecule", Value: "D"},
		},
		CorrectAnswer: "C",
	},
	{
		ID:       14,
		Question: "Conceptual fact about CRISPR?",
		Options: []Option{
			{Label: "Random DNA editing", Value: "A"},
			{Label: "Precise DNA cutting tool", Value: "B"},
			{Label: "Protein folding", Value: "C"},
			{Label: "RNA splicing", Value: "D"},
		},
		CorrectAnswer: "B",
	},
	{
		ID:       15,
		Question: "Beneficial use of GMO technology?",
		Options: []Option{
			{Label: "Making vitamin-enriched rice", Value: "A"},
			{Label: "Producing fossil fuels", Value: "B"},
			{Label: "Building structures", Value: "C"},
			{Label: "Mining metals", Value: "D"},
		},
		CorrectAnswer: "A",
	},
	{
		ID:       16,
		Question: "Concern about GMO crops?",
		Options: []Option{
			{Label: "Higher yields", Value: "A"},
			{Label: "Environmental/ethical impact", Value: "B"},
			{Label: "Increased nutrition", Value: "C"},
			{Label: "Lower costs", Value: "D"},
		},
		CorrectAnswer: "B",
	},
	{
		ID:       17,
		Question: "Dominant allele means?",
		Options: []Option{
			{Label: "Masks effect of recessive allele", Value: "A"},
			{Label: "Always mutates", Value: "B"},
			{Label: "Cannot be inherited", Value: "C"},
			{Label: "Same as phenotype", Value: "D"},
		},
		CorrectAnswer: "A",
	},
	{
		ID:       18,
		Question: "Which describes a phenotype?",
		Options: []Option{
			{Label: "DNA sequence", Value: "A"},
			{Label: "Physical/observable traits", Value: "B"},
			{Label: "Genotype only", Value: "C"},
			{Label: "RNA structure", Value: "D"},
		},
		CorrectAnswer: "B",
	},
	{
		ID:       19,
		Question: "A transgenic organism has?",
		Options: []Option{
			{Label: "Extra chromosomes", Value: "A"},
			{Label: "Genes from other species", Value: "B"},
			{Label: "Only dominant alleles", Value: "C"},
			{Label: "No phenotype", Value: "D"},
		},
		CorrectAnswer: "B",
	},
	{
		ID:       20,
		Question: "A promoter in genetics is?",
		Options: []Option{
			{Label: "Sequence that ends transcription", Value: "A"},
			{Label: "DNA sequence that starts transcription", Value: "B"},
			{Label: "RNA splicing site", Value: "C"},
			{Label: "Protein folding region", Value: "D"},
		},
		CorrectAnswer: "B",
	},
}
