package service

type catalogEntry struct {
	Name        string
	MuscleGroup string
}

// exerciseCatalog is the base list offered to every user on import.
var exerciseCatalog = []catalogEntry{
	{"Supino Reto (Barra)", "Peito"},
	{"Supino Reto (Halter)", "Peito"},
	{"Supino Inclinado (Barra)", "Peito"},
	{"Supino Inclinado (Halter)", "Peito"},
	{"Peck Deck", "Peito"},
	{"Crossover", "Peito"},
	{"Flexão de Braços", "Peito"},

	{"Puxada Pulley", "Costas"},
	{"Remada Baixa", "Costas"},
	{"Remada Curvada", "Costas"},
	{"Barra Fixa", "Costas"},
	{"Levantamento Terra", "Costas"},

	{"Agachamento Livre", "Pernas"},
	{"Leg Press 45", "Pernas"},
	{"Extensora", "Pernas"},
	{"Flexora", "Pernas"},
	{"Avanço/Passada", "Pernas"},
	{"Elevação Pélvica", "Pernas"},

	{"Desenvolvimento (Halter)", "Ombros"},
	{"Desenvolvimento (Barra)", "Ombros"},
	{"Elevação Lateral", "Ombros"},
	{"Elevação Frontal", "Ombros"},
	{"Crucifixo Inverso", "Ombros"},

	{"Rosca Direta", "Braços"},
	{"Rosca Martelo", "Braços"},
	{"Tríceps Pulley", "Braços"},
	{"Tríceps Testa", "Braços"},
	{"Mergulho no Banco", "Braços"},
}
