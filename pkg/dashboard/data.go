package dashboard

const placeholderAvatar = "/placeholder.svg"

// Workers returns the worker roster.
func Workers() []Worker {
	return []Worker{
		{
			ID: "w1", Name: "Roberto Almeida", Position: "Operador de Guindaste Sênior",
			Department: "Manuseio de Cargas", Status: WorkerTraining,
			CompletedTrainings: 12, PendingTrainings: 3, Avatar: placeholderAvatar,
			TrainingProgress: &TrainingProgress{
				CurrentModule:          "Inspeção de Contêineres",
				ProgressPercentage:     65,
				ExpectedCompletionDate: "2023-12-15",
				LastActivity:           "2023-11-23",
			},
		},
		{
			ID: "w2", Name: "Carla Ferreira", Position: "Supervisora de Doca",
			Department: "Operações de Doca", Status: WorkerAvailable,
			CompletedTrainings: 18, PendingTrainings: 0, Avatar: placeholderAvatar,
			TrainingProgress: &TrainingProgress{
				CurrentModule:          "Gerenciamento Avançado de Equipe",
				ProgressPercentage:     90,
				ExpectedCompletionDate: "2023-12-05",
				LastActivity:           "2023-11-26",
			},
		},
		{
			ID: "w3", Name: "Miguel Souza", Position: "Inspetor de Segurança",
			Department: "Segurança & Conformidade", Status: WorkerAvailable,
			CompletedTrainings: 15, PendingTrainings: 2, Avatar: placeholderAvatar,
			TrainingProgress: &TrainingProgress{
				CurrentModule:          "Protocolos de Emergência Avançados",
				ProgressPercentage:     45,
				ExpectedCompletionDate: "2023-12-20",
				LastActivity:           "2023-11-24",
			},
		},
		{
			ID: "w4", Name: "Lucia Pereira", Position: "Operadora de Equipamentos",
			Department: "Gestão de Pátio", Status: WorkerOffDuty,
			CompletedTrainings: 9, PendingTrainings: 5, Avatar: placeholderAvatar,
		},
		{
			ID: "w5", Name: "Fernando Ribeiro", Position: "Operador Júnior",
			Department: "Manuseio de Cargas", Status: WorkerTraining,
			CompletedTrainings: 6, PendingTrainings: 8, Avatar: placeholderAvatar,
			TrainingProgress: &TrainingProgress{
				CurrentModule:          "Segurança na Operação de Guindastes",
				ProgressPercentage:     30,
				ExpectedCompletionDate: "2024-01-10",
				LastActivity:           "2023-11-22",
			},
		},
	}
}

// ActiveTrainings returns the sessions shown on the overview page.
func ActiveTrainings() []ActiveTraining {
	return []ActiveTraining{
		{"t1", "João Silva", "Cargo Handling", "Crane Operation Safety", 75, "09:30", "45:20", TrainingInProgress},
		{"t2", "Maria Oliveira", "Ship Loading", "Container Inspection", 92, "10:15", "32:10", TrainingInProgress},
		{"t3", "Carlos Santos", "Dock Operations", "Emergency Procedures", 100, "08:45", "60:00", TrainingCompleted},
		{"t4", "Ana Costa", "Yard Management", "Equipment Handling", 45, "11:00", "22:30", TrainingPaused},
		{"t5", "Paulo Mendes", "Cargo Handling", "Hazardous Materials", 30, "09:15", "15:45", TrainingInProgress},
	}
}

// Performance returns monthly performance, oldest first.
func Performance() []PerformanceData {
	return []PerformanceData{
		{"Jan", 82, 68, 75},
		{"Fev", 85, 70, 78},
		{"Mar", 83, 74, 80},
		{"Abr", 86, 78, 83},
		{"Mai", 89, 82, 85},
		{"Jun", 91, 85, 88},
		{"Jul", 92, 87, 91},
	}
}

// History returns completed sessions, most recent first.
func History() []HistoryEntry {
	return []HistoryEntry{
		{"h1", "Roberto Almeida", "Segurança na Operação de Guindastes", "2023-07-15", "1h 25m", 92, TrainingCompleted},
		{"h2", "Maria Oliveira", "Inspeção de Contêineres", "2023-07-14", "45m", 85, TrainingCompleted},
		{"h3", "Carlos Santos", "Procedimentos de Emergência", "2023-07-12", "2h 10m", 78, TrainingCompleted},
		{"h4", "Ana Costa", "Manuseio de Equipamentos", "2023-07-10", "1h 15m", 90, TrainingCompleted},
		{"h5", "Fernando Ribeiro", "Materiais Perigosos", "2023-07-08", "1h 45m", 82, TrainingCompleted},
		{"h6", "Roberto Almeida", "Protocolo de Carregamento de Navios", "2023-07-05", "1h 30m", 88, TrainingCompleted},
		{"h7", "Lucia Pereira", "Segurança no Cais", "2023-07-03", "50m", 95, TrainingCompleted},
		{"h8", "Paulo Mendes", "Manuseio Avançado de Carga", "2023-07-01", "2h 30m", 79, TrainingCompleted},
	}
}
