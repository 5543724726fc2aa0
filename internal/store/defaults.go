package store

import "github.com/agrodat/property360/internal/model"

// Built-in dataset used when a document is missing or unreadable.

func DefaultProperty() model.Property {
	return model.Property{
		Name:       "Fazenda Santa Inês",
		Owner:      "João da Silva",
		City:       "Lucas do Rio Verde",
		State:      "MT",
		PostalCode: "78455-000",
		TotalArea:  1250,
		Fields: []model.Field{
			{
				ID:            "1",
				Name:          "Talhão da Sede",
				Area:          120,
				Crop:          "Soja",
				CycleStatus:   model.CycleStatusHarvested,
				CycleProgress: 100,
				Yield:         72,
				SoilHistory: []model.SoilAnalysis{
					{
						ID:                "old_1",
						AnalysisDate:      "2022-09-10",
						Lab:               "SoloLab",
						SampleID:          "102030",
						PH:                5.8,
						OrganicMatterPct:  2.4,
						ClayPct:           26.0,
						SandPct:           f64(56.0),
						SiltPct:           f64(18.0),
						BaseSaturationPct: 48,
						Phosphorus:        f64(18),
						Potassium:         f64(0.30),
						Calcium:           f64(2.1),
						Magnesium:         f64(0.9),
						CEC:               f64(6.8),
						Aluminum:          f64(0.2),
						PotentialAcidity:  f64(4.1),
					},
					{
						ID:                "new_1",
						AnalysisDate:      "2023-09-15",
						Lab:               "SoloLab",
						SampleID:          "246160",
						PH:                6.2,
						OrganicMatterPct:  2.6,
						ClayPct:           26.5,
						SandPct:           f64(55.8),
						SiltPct:           f64(17.7),
						BaseSaturationPct: 55,
						Phosphorus:        f64(25),
						Potassium:         f64(0.39),
						Calcium:           f64(2.6),
						Magnesium:         f64(1.1),
						CEC:               f64(7.5),
						Aluminum:          f64(0),
						PotentialAcidity:  f64(3.4),
					},
				},
			},
			{
				ID:            "2",
				Name:          "Talhão do Rio",
				Area:          85,
				Crop:          "Milho",
				CycleStatus:   model.CycleStatusDeveloping,
				CycleProgress: 45,
				SoilHistory:   []model.SoilAnalysis{},
			},
			{
				ID:            "3",
				Name:          "Encosta Norte",
				Area:          150,
				Crop:          "Algodão",
				CycleStatus:   model.CycleStatusPlanting,
				CycleProgress: 100,
				SoilHistory:   []model.SoilAnalysis{},
			},
		},
	}
}

func DefaultTasks() []model.Task {
	return []model.Task{
		{ID: 1, Title: "Aplicação de Fungicida", Location: "Talhão da Sede", Priority: model.TaskPriorityHigh, Status: model.TaskStatusTodo, Date: "2023-10-25", Assignee: "Carlos"},
		{ID: 2, Title: "Manutenção Plantadeira", Location: "Oficina", Priority: model.TaskPriorityMedium, Status: model.TaskStatusInProgress, Date: "2023-10-24", Assignee: "Roberto"},
		{ID: 3, Title: "Abastecimento Tanques", Location: "Sede", Priority: model.TaskPriorityLow, Status: model.TaskStatusTodo, Date: "2023-10-26", Assignee: "José"},
		{ID: 4, Title: "Colheita Experimental", Location: "Talhão do Rio", Priority: model.TaskPriorityHigh, Status: model.TaskStatusDone, Date: "2023-10-20", Assignee: "Equipe A"},
		{ID: 5, Title: "Monitoramento de Pragas", Location: "Encosta Norte", Priority: model.TaskPriorityMedium, Status: model.TaskStatusInProgress, Date: "2023-10-23", Assignee: "Ana"},
		{ID: 6, Title: "Compra de Diesel", Location: "Escritório", Priority: model.TaskPriorityHigh, Status: model.TaskStatusTodo, Date: "2023-10-27", Assignee: "Adm"},
	}
}

func DefaultTransactions() []model.Transaction {
	return []model.Transaction{
		{ID: 1, Description: "Venda de Soja (Lote A)", Category: "Receita", Counterparty: "Não informado", Amount: 45000, Date: "2023-10-28", Direction: model.DirectionInflow, Settlement: model.SettlementPaid},
		{ID: 2, Description: "Manutenção Colheitadeira", Category: "Maquinário", Counterparty: "Não informado", Amount: 3500, Date: "2023-10-27", Direction: model.DirectionOutflow, Settlement: model.SettlementPaid},
		{ID: 3, Description: "Compra de Defensivos", Category: "Insumos", Counterparty: "Não informado", Amount: 12800, Date: "2023-10-25", Direction: model.DirectionOutflow, Settlement: model.SettlementPending},
		{ID: 4, Description: "Pagamento Funcionários", Category: "Mão de Obra", Counterparty: "Não informado", Amount: 8500, Date: "2023-11-05", Direction: model.DirectionOutflow, Settlement: model.SettlementPending},
		{ID: 5, Description: "Venda de Milho Futuro", Category: "Receita", Counterparty: "Não informado", Amount: 22000, Date: "2023-11-15", Direction: model.DirectionInflow, Settlement: model.SettlementPending},
	}
}

func DefaultSeasonHistory() []model.SeasonYield {
	return []model.SeasonYield{
		{Season: "19/20", Soy: 58, Corn: 105},
		{Season: "20/21", Soy: 62, Corn: 112},
		{Season: "21/22", Soy: 54, Corn: 98},
		{Season: "22/23", Soy: 68, Corn: 125},
		{Season: "23/24", Soy: 72, Corn: 132},
	}
}

func f64(v float64) *float64 { return &v }
