// Package vision provides a food-photo recognition client backed by the
// Google Cloud Vision API.
package vision

import (
	"context"
	"fmt"

	gvision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"

	"calorie_backend/internal/feature/foods/domain/entity"
	"calorie_backend/internal/feature/foods/usecase"
)

// maxLabels caps how many labels one annotate call returns.
const maxLabels = 10

// VisionFoodRecognizer detects food labels in images using the Cloud Vision API.
type VisionFoodRecognizer struct {
	client *gvision.ImageAnnotatorClient
}

// Compile-time check that VisionFoodRecognizer implements FoodRecognizer.
var _ usecase.FoodRecognizer = (*VisionFoodRecognizer)(nil)

// NewVisionFoodRecognizer creates a new VisionFoodRecognizer using ADC.
func NewVisionFoodRecognizer(ctx context.Context) (*VisionFoodRecognizer, error) {
	client, err := gvision.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	return &VisionFoodRecognizer{client: client}, nil
}

// Close releases the Vision API client.
func (v *VisionFoodRecognizer) Close() error {
	return v.client.Close()
}

// DetectLabels runs label detection on the image bytes and returns the
// labels most confident first (the API already orders them by score).
func (v *VisionFoodRecognizer) DetectLabels(ctx context.Context, imageData []byte) ([]entity.FoodLabel, error) {
	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{Content: imageData},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_LABEL_DETECTION, MaxResults: maxLabels},
				},
			},
		},
	}

	resp, err := v.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("vision API request failed: %w", err)
	}

	if len(resp.Responses) == 0 {
		return nil, nil
	}

	if resp.Responses[0].Error != nil {
		return nil, fmt.Errorf("vision API error: %s", resp.Responses[0].Error.Message)
	}

	labels := make([]entity.FoodLabel, 0, len(resp.Responses[0].LabelAnnotations))
	for _, l := range resp.Responses[0].LabelAnnotations {
		labels = append(labels, entity.FoodLabel{
			Name:       l.Description,
			Confidence: l.Score,
		})
	}

	return labels, nil
}
